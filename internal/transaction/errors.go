package transaction

// ValidationError - girdi sözleşmesini bozan istekler için. Çağıran taraf
// bunu 400'e, diğer tüm hataları 500'e çevirir.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
