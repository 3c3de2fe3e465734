package generation

import "testing"

func TestExtractSection(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "summary before next header",
			text:   "Summary:\n A driven engineer.\nExperience:\nEngineer at Acme",
			want:   "A driven engineer.",
			wantOK: true,
		},
		{
			name:   "inline summary",
			text:   "Summary: Seasoned backend developer.\nSkills: Go",
			want:   "Seasoned backend developer.",
			wantOK: true,
		},
		{
			name:   "case-insensitive header",
			text:   "SUMMARY:\nShips reliable systems.\nEducation:\nBSc",
			want:   "Ships reliable systems.",
			wantOK: true,
		},
		{
			name:   "section at end of text",
			text:   "Experience:\nEngineer at Acme\nSummary:\nClosing remarks here.",
			want:   "Closing remarks here.",
			wantOK: true,
		},
		{
			name:   "multi-line body",
			text:   "Summary:\nLine one.\nline two continues.\nExperience:\nAcme",
			want:   "Line one.\nline two continues.",
			wantOK: true,
		},
		{
			name:   "missing section",
			text:   "Experience:\nEngineer at Acme\nSkills: Go",
			wantOK: false,
		},
		{
			name:   "empty section body",
			text:   "Summary:\nExperience:\nEngineer at Acme",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractSection(tc.text, "Summary")
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v (body %q)", tc.wantOK, ok, got)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
