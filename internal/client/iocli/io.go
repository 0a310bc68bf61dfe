// Package iocli ввод и вывод консольного клиента.
package iocli

//go:generate moq -out io_mock.go . IO

// IO консоль клиента
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// ReadPassword читает строку без эха, если ввод терминал
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
