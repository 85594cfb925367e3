package mask

// Buffer is an editable text the Watcher keeps masked,
// typically the contents of an input field.
type Buffer interface {
	String() string
	Replace(text string)
}

// Watcher re-masks a Buffer after every edit.
type Watcher struct {
	pattern *Pattern
}

// NewWatcher returns a Watcher applying p.
func NewWatcher(p *Pattern) *Watcher {
	return &Watcher{pattern: p}
}

// Pattern returns the mask the watcher applies.
func (w *Watcher) Pattern() *Pattern {
	return w.pattern
}

// AfterChange masks the buffer contents and writes them back only when they
// changed, so that unchanged edits cause no extra notifications.
// It reports whether the buffer was replaced.
func (w *Watcher) AfterChange(buf Buffer) bool {
	original := buf.String()

	masked := w.pattern.Apply(original)
	if masked == original {
		return false
	}

	buf.Replace(masked)

	return true
}
