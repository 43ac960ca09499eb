package resumes

import (
	"strings"
	"testing"
)

func TestCleanupGeneratedResumeReplacesPromptExamples(t *testing.T) {
	snap := sampleSnapshot()

	raw := `<div style="margin:0"><h1>Иван Иванов</h1>` +
		`<p>ivan.ivanov@example.com</p>` +
		`<p>Казахстанско-Британский технический университет</p>` +
		`<p>Технические навыки: Python</p></div>`

	fixed := CleanupGeneratedResume(raw, snap)

	if strings.Contains(fixed, "Иван Иванов") {
		t.Fatal("placeholder name survived cleanup")
	}
	if strings.Contains(fixed, "ivan.ivanov@example.com") {
		t.Fatal("placeholder email survived cleanup")
	}
	if strings.Contains(fixed, "Технические навыки:") {
		t.Fatal("placeholder skill header survived cleanup")
	}
	if !strings.Contains(fixed, snap.DisplayName) {
		t.Fatal("display name not substituted")
	}
	if !strings.Contains(fixed, snap.Email) {
		t.Fatal("email not substituted")
	}
	if !strings.Contains(fixed, snap.Institution) {
		t.Fatal("institution not substituted")
	}
}

func TestValidateGeneratedResume(t *testing.T) {
	snap := sampleSnapshot()
	long := strings.Repeat("резюме ", 100)

	cases := []struct {
		name string
		html string
		want bool
	}{
		{
			name: "valid output",
			html: `<div style="margin:0">` + snap.DisplayName + long + `</div>`,
			want: true,
		},
		{
			name: "class attribute counts as markup",
			html: `<div class="resume">` + snap.DisplayName + long + `</div>`,
			want: true,
		},
		{
			name: "too short",
			html: `<div style="margin:0">` + snap.DisplayName + `</div>`,
			want: false,
		},
		{
			name: "missing display name",
			html: `<div style="margin:0">` + long + `</div>`,
			want: false,
		},
		{
			name: "no markup attributes",
			html: snap.DisplayName + long,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateGeneratedResume(tc.html, snap); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSanitizeGeneratedResumeRoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	long := strings.Repeat("опыт и образование ", 50)

	raw := `<div style="padding:8px"><h1>Иван Иванов</h1>` + long + `</div>`
	fixed, valid := SanitizeGeneratedResume(raw, snap)
	if !valid {
		t.Fatalf("expected sanitized output to pass the quality gate: %q", fixed)
	}
	if !strings.Contains(fixed, snap.DisplayName) {
		t.Fatal("sanitized output must mention the candidate")
	}
}
