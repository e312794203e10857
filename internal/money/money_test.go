package money

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"100.00", 10000},
		{"$100.00 ", 10000},
		{"$ 100.00", 10000},
		{"0.00", 0},
		{"130", 13000},
		{"5.5", 550},
		{"-12.34", -1234},
		{"$-0.01", -1},
		{"+7.25", 725},
		{".5", 50},
		{"100.", 10000},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "", "$", "1.234", "12a.00", "1.2.3", "--5"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{10000, "100.00"},
		{3500, "35.00"},
		{0, "0.00"},
		{-1234, "-12.34"},
		{5, "0.05"},
		{-5, "-0.05"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Cents(%d).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := Cents(3500).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != "35.00" {
		t.Errorf("MarshalJSON = %s, want 35.00", data)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var c Cents
	if err := c.UnmarshalJSON([]byte(`"$35.00"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if c != 3500 {
		t.Errorf("UnmarshalJSON = %d, want 3500", c)
	}
	if err := c.UnmarshalJSON([]byte(`12.5`)); err != nil {
		t.Fatalf("UnmarshalJSON number: %v", err)
	}
	if c != 1250 {
		t.Errorf("UnmarshalJSON number = %d, want 1250", c)
	}
}
