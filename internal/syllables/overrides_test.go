package syllables

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
)

func TestOverridesAdd(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		count   int
		wantErr bool
	}{
		{
			name:  "plain",
			word:  "fire",
			count: 2,
		},
		{
			name:  "case and space folded",
			word:  "  Hour ",
			count: 2,
		},
		{
			name:    "empty word",
			word:    " ",
			count:   1,
			wantErr: true,
		},
		{
			name:    "phrase",
			word:    "ice cream",
			count:   2,
			wantErr: true,
		},
		{
			name:    "zero count",
			word:    "fire",
			count:   0,
			wantErr: true,
		},
		{
			name:    "negative count",
			word:    "fire",
			count:   -3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Overrides
			err := o.Add(tt.word, tt.count)
			if tt.wantErr {
				if err == nil {
					t.Fatal("error was expected")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if o.Len() != 1 {
				t.Fatalf("expected one entry, got %d", o.Len())
			}
		})
	}
}

func TestNewOverridesCustomWins(t *testing.T) {
	o, err := NewOverrides(map[string]int{
		"Doing": 3,
		"hour":  2,
	})
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := o.Lookup("doing"); v != 3 {
		t.Errorf("custom override must win over predefined one, got %d", v)
	}
	if v, ok := o.Lookup("HOUR"); !ok || v != 2 {
		t.Errorf("lookup must be case-insensitive, got %d, %v", v, ok)
	}
	if _, ok := o.Lookup("cat"); ok {
		t.Error("cat is not in the table")
	}
}

func TestNewOverridesSameWordInDifferentCase(t *testing.T) {
	// Map order varies between runs, the error must not depend on it.
	for range 16 {
		_, err := NewOverrides(map[string]int{
			"Fire": 2,
			"fire": 3,
		})
		if err == nil {
			t.Fatal("error was expected for keys folding into the same word")
		}
		if !strings.Contains(err.Error(), `"Fire" and "fire" are the same word`) {
			t.Fatalf("unexpected error: %s", err)
		}
	}
}

func TestNewOverridesInvalid(t *testing.T) {
	if _, err := NewOverrides(map[string]int{"fire": 0}); err == nil {
		t.Fatal("error was expected for a zero count")
	}
}

func TestOverridesAllIsCopy(t *testing.T) {
	var o Overrides
	if err := o.Merge(map[string]int{"fire": 2, "hour": 2}); err != nil {
		t.Fatal(err)
	}

	all := o.All()
	expected := map[string]int{"fire": 2, "hour": 2}
	if !reflect.DeepEqual(expected, all) {
		deepequal.SideBySide(t, "overrides", expected, all)
	}

	all["fire"] = 10
	if v, _ := o.Lookup("fire"); v != 2 {
		t.Fatalf("All() returned shared map, expected copy")
	}
}

func TestNilOverrides(t *testing.T) {
	var o *Overrides
	if o.Len() != 0 {
		t.Fatal("nil table must be empty")
	}
	if _, ok := o.Lookup("doing"); ok {
		t.Fatal("nil table must not have entries")
	}
}
