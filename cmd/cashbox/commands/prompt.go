package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"cashbox/internal/crypto"
	"cashbox/internal/domain"
	"cashbox/internal/services/auth"
)

var (
	errLoginFailed = errors.New("login failed: check username/password")

	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	headColor = color.New(color.Bold)
)

// prompter reads menu answers and passwords. Passwords are read without echo
// when the input is a terminal and as a plain line otherwise.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // -1 when in is not a terminal
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// Line prints label and returns the next input line, trimmed.
func (p *prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Password prints label and returns the entered bytes. Callers wipe the
// result with crypto.Wipe.
func (p *prompter) Password(label string) ([]byte, error) {
	fmt.Fprint(p.out, label)
	if p.fd >= 0 {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		return b, err
	}
	s, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return nil, err
	}
	return []byte(strings.TrimRight(s, "\r\n")), nil
}

func success(w io.Writer, format string, args ...any) {
	_, _ = okColor.Fprintf(w, format+"\n", args...)
}

func failure(w io.Writer, format string, args ...any) {
	_, _ = failColor.Fprintf(w, format+"\n", args...)
}

// login prompts for name's password and returns the sanitized username.
func login(p *prompter, name string) (domain.Username, error) {
	pw, err := p.Password("Password: ")
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(pw)

	ok, err := appCtx.Auth.Login(name, pw)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errLoginFailed
	}
	return domain.Username(auth.SanitizeUsername(name)), nil
}

// explain turns a validation error into the message shown to the user. It
// reports false for errors that are not validation failures.
func explain(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be > 0.", true
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds.", true
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Account not found.", true
	}
	return "", false
}
