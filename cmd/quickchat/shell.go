package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"quickchat/auth"
	"quickchat/domain"
	"quickchat/domain/search"
	"quickchat/errors"
	"quickchat/projection"
	"strconv"
	"strings"

	"github.com/gookit/color"
)

const (
	mainMenu = "Please select an option:\n" +
		"1) Send Messages\n" +
		"2) Show Recently Sent Messages\n" +
		"3) View Reports\n" +
		"4) Quit"
	reportMenu = "Select a report option:\n" +
		"1) Display All Sent Messages\n" +
		"2) Display Longest Message\n" +
		"3) Search by Message ID\n" +
		"4) Search by Recipient\n" +
		"5) Delete Message by Hash\n" +
		"6) Full Report\n" +
		"7) Keyword Search\n" +
		"8) Session Table\n" +
		"9) Back to Main Menu"
	choiceMenu = "What would you like to do with this message?\n" +
		"1) Send Message\n" +
		"2) Disregard Message\n" +
		"3) Store Message to send later"
)

// shell is the line oriented prompt loop. It only collects strings and prints what the core returns.
type shell struct {
	app     *app
	in      *bufio.Scanner
	out     io.Writer
	colours bool
}

func newShell(app *app, in io.Reader, out io.Writer, colours bool) *shell {
	return &shell{app: app, in: bufio.NewScanner(in), out: out, colours: colours}
}

// Run registers, logs in and serves the main menu until Quit or end of input.
func (s *shell) Run(ctx context.Context) error {
	s.header("Welcome to QuickChat!")
	s.println("Let's create your account.")

	username, ok := s.register()
	if !ok {
		return nil
	}
	firstName, err := s.login()
	if err != nil {
		return err
	}
	if firstName == "" {
		return nil
	}
	s.app.timeline.Owner = username

	if loaded := s.app.store.LoadPersisted(); loaded > 0 {
		s.println(fmt.Sprintf("%d stored messages loaded.", loaded))
	}
	s.header(fmt.Sprintf("Welcome to QuickChat, %s!", firstName))

	for {
		choice, ok := s.prompt(mainMenu)
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			s.sendMessages(ctx)
		case "2":
			s.recentMessages()
		case "3":
			s.reports(ctx)
		case "4":
			s.app.log.Info("Session ended", "messages", s.app.compose.TotalMessages(),
				"censored", s.app.moderator.Hits().Total())
			s.println("Thank you for using QuickChat. Goodbye!")
			return nil
		default:
			s.failure("Invalid option selected.")
		}
	}
}

// register asks for every field until it passes, then creates the account.
func (s *shell) register() (string, bool) {
	var req auth.RegisterRequest
	var ok bool
	if req.FirstName, ok = s.prompt("Enter your first name:"); !ok {
		return "", false
	}
	if req.LastName, ok = s.prompt("Enter your last name:"); !ok {
		return "", false
	}
	if req.Username, ok = s.promptUntil(
		"Enter username (must contain _ and be max 5 characters):\nExample: kyl_1",
		auth.CheckUserName, "Username successfully captured.", errors.ErrInvalidUsername); !ok {
		return "", false
	}
	if req.Password, ok = s.promptUntil(
		"Enter password:\n- At least 8 characters\n- Contains capital letter\n- Contains number\n- Contains special character",
		auth.CheckPasswordComplexity, "Password successfully captured.", errors.ErrInvalidPassword); !ok {
		return "", false
	}
	if req.CellPhone, ok = s.promptUntil(
		"Enter cell phone number with international code:\nExample: +27834557896",
		auth.CheckCellPhoneNumber, "Cell phone number successfully added.", errors.ErrInvalidCellPhone); !ok {
		return "", false
	}

	if _, err := s.app.auth.Register(req); err != nil {
		s.failure(sentence(err))
		return "", false
	}
	s.success("Registration complete!")
	return req.Username, true
}

// login returns the first name of the logged in user, empty when input ended.
func (s *shell) login() (string, error) {
	for {
		username, ok := s.prompt("Enter username to login:")
		if !ok {
			return "", nil
		}
		password, ok := s.prompt("Enter password:")
		if !ok {
			return "", nil
		}

		session, err := s.app.auth.Login(username, password)
		switch {
		case err == nil:
			s.success(session.Greeting)
			return session.FirstName, nil
		case stderrors.Is(err, errors.ErrTooManyAttempts):
			s.failure("Maximum login attempts exceeded. Exiting.")
			return "", err
		case stderrors.Is(err, errors.ErrInvalidCredentials):
			remaining := s.app.config.MaxLoginAttempts - s.app.auth.Attempts()
			s.failure(fmt.Sprintf("%s\nAttempts remaining: %d", sentence(err), remaining))
		default:
			return "", err
		}
	}
}

func (s *shell) sendMessages(ctx context.Context) {
	input, ok := s.prompt("How many messages would you like to send?")
	if !ok {
		return
	}
	count, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		s.failure("Invalid number entered.")
		return
	}
	if count <= 0 {
		s.failure("Please enter a positive number.")
		return
	}

	for i := 0; i < count; i++ {
		recipient, ok := s.promptUntil(
			fmt.Sprintf("Message %d of %d\nEnter recipient cell phone number (with international code):", i+1, count),
			domain.IsValidRecipient, "Cell phone number successfully captured.",
			fmt.Errorf("cell phone number is incorrectly formatted or does not contain an international code. Please correct the number and try again"))
		if !ok {
			return
		}
		content, ok := s.promptContent()
		if !ok {
			return
		}
		choice, ok := s.promptChoice()
		if !ok {
			return
		}

		result, err := s.app.compose.Compose(ctx, domain.ComposeRequest{Recipient: recipient, Content: content}, choice)
		if err != nil {
			s.failure(err.Error())
			continue
		}
		if len(result.Censored) > 0 {
			s.println(fmt.Sprintf("%d word(s) were censored.", len(result.Censored)))
		}
		s.success(result.Confirmation)
		if result.Message.Status() == domain.StatusSent {
			s.println(result.Message.Details())
		}
	}
	s.println(fmt.Sprintf("Total messages sent: %d", s.app.compose.TotalMessages()))
}

func (s *shell) promptContent() (string, bool) {
	for {
		content, ok := s.prompt("Enter your message (max 250 characters):")
		if !ok {
			return "", false
		}
		check := domain.CheckLength(&content)
		if check.OK {
			s.success(check.Message)
			return content, true
		}
		s.failure(check.Message)
	}
}

func (s *shell) promptChoice() (domain.Choice, bool) {
	for {
		input, ok := s.prompt(choiceMenu)
		if !ok {
			return 0, false
		}
		choice := domain.ParseChoice(input)
		if _, valid := choice.Status(); valid {
			return choice, true
		}
		s.failure("Invalid option selected.")
	}
}

func (s *shell) recentMessages() {
	recent := s.app.timeline.Recent()
	if len(recent) == 0 {
		s.println("No recently sent messages.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Recently sent messages:\n")
	for _, entry := range recent {
		fmt.Fprintf(&sb, "\n[%s] To: %s\n%s\n", entry.At.Local().Format("2006-01-02 15:04"), entry.Recipient, entry.Content)
	}
	s.println(sb.String())
}

func (s *shell) reports(ctx context.Context) {
	choice, ok := s.prompt(reportMenu)
	if !ok {
		return
	}
	store := s.app.store
	switch choice {
	case "1":
		s.println(store.SentMessagesInfo())
	case "2":
		longest, _ := store.LongestMessage()
		s.println("Longest Message:\n\n" + longest)
	case "3":
		id, ok := s.prompt("Enter Message ID:")
		if !ok {
			return
		}
		msg, err := store.FindByID(strings.TrimSpace(id))
		if err != nil {
			s.failure("Message ID not found.")
			return
		}
		s.println(projection.Summary(msg))
	case "4":
		recipient, ok := s.prompt("Enter Recipient Number:")
		if !ok {
			return
		}
		recipient = strings.TrimSpace(recipient)
		s.println(projection.RecipientResults(recipient, store.FindByRecipient(recipient)))
	case "5":
		hash, ok := s.prompt("Enter Message Hash:")
		if !ok {
			return
		}
		content, err := store.DeleteByHash(ctx, strings.TrimSpace(hash))
		if err != nil {
			s.failure("Message hash not found.")
			return
		}
		s.success(fmt.Sprintf("Message %q successfully deleted.", content))
	case "6":
		s.println(store.Report())
	case "7":
		input, ok := s.prompt("Search (e.g. dinner --recipient +27838968976 --status sent --limit 5):")
		if !ok {
			return
		}
		results, err := store.Search(ctx, *search.NewSearchQuery(input))
		if err != nil {
			s.failure(sentence(err))
			return
		}
		if len(results) == 0 {
			s.println("No messages found.")
			return
		}
		projection.WriteTable(s.out, results)
	case "8":
		messages := store.Messages()
		if len(messages) == 0 {
			s.println("No messages available.")
			return
		}
		projection.WriteTable(s.out, messages)
	case "9":
	default:
		s.failure("Invalid option selected.")
	}
}

// promptUntil repeats the question until valid accepts the answer.
func (s *shell) promptUntil(question string, valid func(string) bool, success string, failure error) (string, bool) {
	for {
		answer, ok := s.prompt(question)
		if !ok {
			return "", false
		}
		if valid(answer) {
			s.success(success)
			return answer, true
		}
		s.failure(sentence(failure))
	}
}

// prompt returns false once the input is exhausted.
func (s *shell) prompt(question string) (string, bool) {
	s.println(question)
	fmt.Fprint(s.out, "> ")
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *shell) header(text string) {
	if s.colours {
		text = color.New(color.BgBlack, color.FgGreen, color.OpBold).Render(text)
	}
	s.println(text)
}

func (s *shell) success(text string) {
	if s.colours {
		text = color.New(color.FgGreen).Render(text)
	}
	s.println(text)
}

func (s *shell) failure(text string) {
	if s.colours {
		text = color.New(color.FgRed).Render(text)
	}
	s.println(text)
}

func (s *shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

// sentence turns an error into display text: capitalized, ending with a period.
func sentence(err error) string {
	text := err.Error()
	if text == "" {
		return text
	}
	text = strings.ToUpper(text[:1]) + text[1:]
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}
