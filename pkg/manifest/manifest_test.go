package manifest

import (
	"testing"

	"github.com/matzehuels/iconforge/pkg/errors"
)

func TestDefaultSizes(t *testing.T) {
	want := Sizes{
		{"32x32.png", 32},
		{"128x128.png", 128},
		{"128x128@2x.png", 256},
		{"icon.png", 512},
		{"icon_1024.png", 1024},
	}
	if len(DefaultSizes) != len(want) {
		t.Fatalf("len(DefaultSizes) = %d, want %d", len(DefaultSizes), len(want))
	}
	for i, e := range want {
		if DefaultSizes[i] != e {
			t.Errorf("DefaultSizes[%d] = %+v, want %+v", i, DefaultSizes[i], e)
		}
	}
	if err := DefaultSizes.Validate(); err != nil {
		t.Errorf("DefaultSizes.Validate() = %v", err)
	}
}

func TestDefaultICO(t *testing.T) {
	want := []int{16, 32, 48, 64, 128, 256}
	if len(DefaultICO) != len(want) {
		t.Fatalf("len(DefaultICO) = %d, want %d", len(DefaultICO), len(want))
	}
	for i, d := range want {
		if DefaultICO[i] != d {
			t.Errorf("DefaultICO[%d] = %d, want %d", i, DefaultICO[i], d)
		}
	}
	if err := DefaultICO.Validate(); err != nil {
		t.Errorf("DefaultICO.Validate() = %v", err)
	}
	if got := DefaultICO.String(); got != "16,32,48,64,128,256" {
		t.Errorf("DefaultICO.String() = %q", got)
	}
}

func TestSizesValidate(t *testing.T) {
	tests := []struct {
		name    string
		sizes   Sizes
		wantErr bool
	}{
		{"empty", Sizes{}, false},
		{"single", Sizes{{"a.png", 16}}, false},
		{"duplicate name", Sizes{{"a.png", 16}, {"a.png", 32}}, true},
		{"zero size", Sizes{{"a.png", 0}}, true},
		{"path in name", Sizes{{"x/a.png", 16}}, true},
		{"reserved ico name", Sizes{{"icon.ico", 16}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sizes.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidManifest) {
				t.Errorf("Validate() code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidManifest)
			}
		})
	}
}

func TestICOValidate(t *testing.T) {
	tests := []struct {
		name    string
		ico     ICO
		wantErr bool
	}{
		{"default", DefaultICO, false},
		{"single 256", ICO{256}, false},
		{"empty", ICO{}, true},
		{"too large", ICO{512}, true},
		{"zero", ICO{0}, true},
		{"duplicate", ICO{16, 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ico.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLargest(t *testing.T) {
	e, ok := DefaultSizes.Largest()
	if !ok || e.Name != "icon_1024.png" || e.Size != 1024 {
		t.Errorf("Largest() = %+v, %v", e, ok)
	}
	if _, ok := (Sizes{}).Largest(); ok {
		t.Error("Largest() on empty manifest should report false")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := DefaultSizes.Clone()
	s[0].Size = 1
	if DefaultSizes[0].Size != 32 {
		t.Error("Clone() shares backing array with DefaultSizes")
	}
	c := DefaultICO.Clone()
	c[0] = 1
	if DefaultICO[0] != 16 {
		t.Error("Clone() shares backing array with DefaultICO")
	}
}
