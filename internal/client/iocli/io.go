package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод-вывод терминала для команд formsync
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput читает строку до перевода строки без пробелов по краям
	ReadInput(prompt string) (string, error)
	// ReadPassword читает секрет без эха, если вход является терминалом
	ReadPassword(prompt string) (string, error)
	// Write пишет сырые байты (JSON вывод)
	Write(p []byte) (n int, err error)
}
