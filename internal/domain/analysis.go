package domain

// ImageAnalysis is the best-effort structured result of a vision model pass
// over an uploaded image. Every field may be empty; it is consumed once by
// the analysis reducer and then discarded.
type ImageAnalysis struct {
	Caption     string   `json:"caption"`
	Subjects    []string `json:"subjects"`
	Style       string   `json:"style"`
	Lighting    string   `json:"lighting"`
	Composition string   `json:"composition"`
	Colors      []string `json:"colors"`
	Mood        string   `json:"mood"`
	Technical   string   `json:"technical"`
}

// IsEmpty reports whether the analysis carries no usable signal at all.
func (a ImageAnalysis) IsEmpty() bool {
	return a.Caption == "" && len(a.Subjects) == 0 && a.Style == "" &&
		a.Lighting == "" && a.Composition == "" && len(a.Colors) == 0 &&
		a.Mood == "" && a.Technical == ""
}
