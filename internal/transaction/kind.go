package transaction

// Kind - finansal işlem türü. Her tür kendi tablosunda tutulur; tür kolonu
// yoktur, kayıt hangi tablodaysa o türdendir.
type Kind string

const (
	KindSalary    Kind = "salary"    // maaş ödemesi
	KindSales     Kind = "sales"     // araç satışı
	KindCustody   Kind = "custody"   // avans / emanet
	KindExpense   Kind = "expense"   // gider
	KindDeduction Kind = "deduction" // kesinti
)

// Kinds - sabit okuma sırası. Tür filtresi olmayan listelemede tablolar bu
// sırayla okunur, eşit tarihli kayıtlarda bu sıra korunur.
var Kinds = []Kind{KindSalary, KindSales, KindCustody, KindExpense, KindDeduction}

// kindTables - tür -> tablo eşlemesinin tamamı. Dağınık switch'ler yerine
// okuma ve yazma yolu bu tek tabloyu kullanır.
var kindTables = map[Kind]string{
	KindSalary:    "salary_records",
	KindSales:     "sales",
	KindCustody:   "advance_payments",
	KindExpense:   "expenses",
	KindDeduction: "deductions",
}

// ParseKind - gelen tür literalini doğrular. Bilinmeyen tür, hiçbir tablo
// sorgulanmadan reddedilir.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindTables[k]; !ok {
		return "", &ValidationError{Msg: "Geçersiz işlem türü (salary|sales|custody|expense|deduction)"}
	}
	return k, nil
}

// TableName - türün arkasındaki tablo adı. Aylık özet gibi başka paketlerin
// aynı eşlemeyi kullanması için dışa açık.
func TableName(k Kind) (string, bool) {
	tbl, ok := kindTables[k]
	return tbl, ok
}
