package domain

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewPreferenceTrimsAndCompletes(t *testing.T) {
	pref := NewPreference("  Paris ", "\tArsenal\n")
	if pref.City != "Paris" || pref.Team != "Arsenal" {
		t.Fatalf("expected trimmed values, got %+v", pref)
	}
	if !pref.Complete() {
		t.Fatal("expected complete preference")
	}

	cases := []Preference{
		NewPreference("", "Arsenal"),
		NewPreference("Paris", "   "),
		{},
	}
	for _, p := range cases {
		if p.Complete() {
			t.Fatalf("expected %+v to be incomplete", p)
		}
	}
}

func TestPreferenceLabelsFallBack(t *testing.T) {
	if got := (Preference{}).CityLabel(); got != "City" {
		t.Fatalf("expected City label, got %q", got)
	}
	if got := (Preference{}).TeamLabel(); got != "Team" {
		t.Fatalf("expected Team label, got %q", got)
	}
	pref := Preference{City: "Lyon", Team: "OL"}
	if pref.CityLabel() != "Lyon" || pref.TeamLabel() != "OL" {
		t.Fatalf("expected preference values as labels, got %q/%q", pref.CityLabel(), pref.TeamLabel())
	}
}

func TestPreferenceJSONTags(t *testing.T) {
	prefType := reflect.TypeOf(Preference{})
	for name, tag := range map[string]string{"City": "city", "Team": "team"} {
		field, ok := prefType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := field.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected json tag %s, got %s", name, tag, got)
		}
	}
}

func TestLoadingViewUsesPlaceholders(t *testing.T) {
	view := LoadingView(Preference{City: "Paris"})
	if view.CityLabel != "Paris" || view.TeamLabel != "Team" {
		t.Fatalf("unexpected labels %q/%q", view.CityLabel, view.TeamLabel)
	}
	if !view.Loading || view.Theme != nil {
		t.Fatalf("expected loading view without theme, got %+v", view)
	}
	for _, msg := range []string{view.CityFact, view.TeamFact, view.Conditions.Time, view.Conditions.Weather, view.Stats.LastGame, view.Stats.LeaguePosition, view.CityNews.Message, view.TeamNews.Message} {
		if !strings.HasPrefix(msg, "Loading ") {
			t.Fatalf("expected loading message, got %q", msg)
		}
	}
}
