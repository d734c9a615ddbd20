package buttonstate

// Target pairs a live element with the baseline captured when it was bound.
// The baseline never changes, even if the element's content is later changed
// by something else.
type Target struct {
	Element         Element
	OriginalText    string
	OriginalHTML    string
	OriginalDisplay string
}

func bindTargets(elements []Element) []Target {
	if len(elements) == 0 {
		return nil
	}
	targets := make([]Target, len(elements))
	for i, el := range elements {
		targets[i] = Target{
			Element:         el,
			OriginalText:    el.TextContent(),
			OriginalHTML:    el.InnerHTML(),
			OriginalDisplay: el.ComputedDisplay(),
		}
	}
	return targets
}

// restoreDisplay is the inline display value that shows the target again. A
// baseline of "none" defers to the stylesheet.
func (t Target) restoreDisplay() string {
	if t.OriginalDisplay == displayNone {
		return ""
	}
	return t.OriginalDisplay
}

const displayNone = "none"
