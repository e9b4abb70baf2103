package styles

import (
	"testing"
)

func TestFitFontSize(t *testing.T) {
	tests := []struct {
		name   string
		view   TextView
		minMax [2]float64 // expected to be within [min, max]
	}{
		{
			name:   "small box",
			view:   TextView{Text: "ops", W: 20, H: 20},
			minMax: [2]float64{fontSizeMin, fontSizeMax},
		},
		{
			name:   "large box short text",
			view:   TextView{Text: "HR", W: 200, H: 100},
			minMax: [2]float64{fontSizeMin, fontSizeMax},
		},
		{
			name:   "narrow box long text",
			view:   TextView{Text: "Office of the General Counsel", W: 50, H: 100},
			minMax: [2]float64{fontSizeMin, fontSizeMax},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitFontSize(tt.view)
			if got < tt.minMax[0] || got > tt.minMax[1] {
				t.Errorf("FitFontSize() = %v, want between %v and %v", got, tt.minMax[0], tt.minMax[1])
			}
		})
	}
}

func TestFitFontSizeDefaultBox(t *testing.T) {
	// The default 140x50 box with a typical title lands mid-range.
	got := FitFontSize(TextView{Text: "VP Engineering", W: 140, H: 50})
	if got <= fontSizeMin || got >= fontSizeMax {
		t.Errorf("FitFontSize() = %v, want strictly inside (%v, %v)", got, fontSizeMin, fontSizeMax)
	}
}

func TestFontSizeForEdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		availWidth float64
		availH     float64
		textLen    int
	}{
		{"zero text length", 100, 50, 0},
		{"negative text length", 100, 50, -1},
		{"very small dimensions", 1, 1, 5},
		{"very large dimensions", 10000, 10000, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fontSizeFor(tt.availWidth, tt.availH, tt.textLen)
			if got < fontSizeMin || got > fontSizeMax {
				t.Errorf("fontSizeFor(%v, %v, %d) = %v, want between %v and %v",
					tt.availWidth, tt.availH, tt.textLen, got, fontSizeMin, fontSizeMax)
			}
		})
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "ampersand",
			input: "R & D",
			want:  "R &amp; D",
		},
		{
			name:  "angle brackets",
			input: "<script>",
			want:  "&lt;script&gt;",
		},
		{
			name:  "quotes",
			input: `say "hi"`,
			want:  "say &#34;hi&#34;",
		},
		{
			name:  "apostrophe",
			input: "it's",
			want:  "it&#39;s",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeXML(tt.input); got != tt.want {
				t.Errorf("EscapeXML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
