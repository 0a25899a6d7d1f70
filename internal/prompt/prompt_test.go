package prompt

import (
	"strings"
	"testing"
)

func TestRender_SubstitutesAllSlots(t *testing.T) {
	out, err := Render(
		"Richard tinggal di Jakarta",
		"No conversation yet.",
		"Richard tinggal di Bandung kan?",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Richard tinggal di Jakarta",
		"No conversation yet.",
		"Richard tinggal di Bandung kan?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
	if strings.Contains(out, "{{") {
		t.Errorf("unexpanded template variable left in prompt")
	}
}

func TestRender_CarriesCorrectionRule(t *testing.T) {
	out, err := Render("Richard tinggal di Jakarta", "No conversation yet.", "Richard tinggal di Bandung kan?")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// The correction mandate must be embedded verbatim so the model is
	// instructed to contradict wrong statements instead of agreeing.
	correction := "Jika pertanyaan atau pernyataan pengguna SALAH atau BERTENTANGAN dengan CONTEXT, tugas utama Anda adalah MENGOREKSI mereka dengan ramah dan tegas."
	if !strings.Contains(out, correction) {
		t.Error("prompt is missing the correction-mandating instruction")
	}
}

func TestRender_CarriesGroundingRules(t *testing.T) {
	out, err := Render("ctx", "hist", "q")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	rules := []string{
		"JANGAN PERNAH MENGARANG",          // no fabrication beyond context
		"BAHASA INDONESIA 100%",            // always answer in Indonesian
		"JANGAN SEBUT KATA \"CONTEXT\"",    // paraphrastic hedges instead
		"Variasi Awalan Kalimat",           // varied sentence openings
		"katakan dengan jelas",             // admit missing information
	}
	for _, rule := range rules {
		if !strings.Contains(out, rule) {
			t.Errorf("prompt is missing rule %q", rule)
		}
	}
}

func TestTemplate_InputVariables(t *testing.T) {
	tmpl := Template()
	want := map[string]bool{"context": true, "chat_history": true, "question": true}
	if len(tmpl.InputVariables) != len(want) {
		t.Fatalf("expected %d input variables, got %d", len(want), len(tmpl.InputVariables))
	}
	for _, v := range tmpl.InputVariables {
		if !want[v] {
			t.Errorf("unexpected input variable %q", v)
		}
	}
}
