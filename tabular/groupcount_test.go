package tabular

import "testing"

func TestGroupCount(t *testing.T) {
	tab, err := FromRecords([][]string{
		{"Country", "Species"},
		{"Germany", "Apis mellifera"},
		{"Germany", "Bombus terrestris"},
		{"Germany", "Apis mellifera"},
		{"France", "Apis mellifera"},
		{"France", ""},
		{"", "Vespa crabro"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	tests := []struct {
		name     string
		valueCol string
		unique   bool
		want     map[string]int
	}{
		{
			name: "rows per group",
			want: map[string]int{"Germany": 3, "France": 2},
		},
		{
			name:     "non-empty values per group",
			valueCol: "Species",
			want:     map[string]int{"Germany": 3, "France": 1},
		},
		{
			name:     "unique values per group",
			valueCol: "Species",
			unique:   true,
			want:     map[string]int{"Germany": 2, "France": 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := tab.GroupCount("Country", test.valueCol, test.unique)
			if err != nil {
				t.Fatalf("GroupCount: %v", err)
			}
			if len(got) != len(test.want) {
				t.Fatalf("expected %d groups, got %d (%v)", len(test.want), len(got), got)
			}
			for k, w := range test.want {
				if got[k] != w {
					t.Errorf("group %q: expected %d, got %d", k, w, got[k])
				}
			}
		})
	}
}

func TestGroupCountUnknownColumn(t *testing.T) {
	tab, err := FromRecords([][]string{{"a"}, {"1"}})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	if _, err := tab.GroupCount("missing", "", false); err == nil {
		t.Error("expected error for unknown group column")
	}
	if _, err := tab.GroupCount("a", "missing", false); err == nil {
		t.Error("expected error for unknown value column")
	}
}
