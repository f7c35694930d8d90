package transaction

import "testing"

func TestParseKind(t *testing.T) {
	valid := map[string]Kind{
		"salary":    KindSalary,
		"sales":     KindSales,
		"custody":   KindCustody,
		"expense":   KindExpense,
		"deduction": KindDeduction,
	}
	for literal, want := range valid {
		got, err := ParseKind(literal)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", literal, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %s, want %s", literal, got, want)
		}
	}

	for _, literal := range []string{"", "unknown", "SALARY", "salaries"} {
		_, err := ParseKind(literal)
		if err == nil {
			t.Fatalf("ParseKind(%q) should fail", literal)
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Fatalf("ParseKind(%q) error is %T, want *ValidationError", literal, err)
		}
	}
}

func TestTableNameCoversAllKinds(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds {
		tbl, ok := TableName(k)
		if !ok {
			t.Fatalf("no table for kind %s", k)
		}
		if prev, dup := seen[tbl]; dup {
			t.Fatalf("table %s mapped from both %s and %s", tbl, prev, k)
		}
		seen[tbl] = k
	}

	want := map[Kind]string{
		KindSalary:    "salary_records",
		KindSales:     "sales",
		KindCustody:   "advance_payments",
		KindExpense:   "expenses",
		KindDeduction: "deductions",
	}
	for k, tbl := range want {
		got, _ := TableName(k)
		if got != tbl {
			t.Fatalf("TableName(%s) = %s, want %s", k, got, tbl)
		}
	}
}
