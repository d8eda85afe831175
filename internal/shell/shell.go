// Package shell implements the interactive menu over an expense session.
//
// All user input is collected here and validated with explicit parse
// outcomes; the session and storage layers only ever see valid data. Bad
// input re-asks, it never aborts the program.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"expenses/internal/core"
	"expenses/internal/session"
	"expenses/internal/storage"
)

const separator = "----------------------------------------"

const menu = `
    1. Add Expenses
    2. Remove Expenses
    3. View Expenses
    4. View Monthly Summary
    5. Exit
`

// Shell drives one interactive session over the given reader and writer.
type Shell struct {
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer
	now  func() core.Date
}

func New(sess *session.Session, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
		now:  core.Today,
	}
}

// Run starts the session and loops over the menu until the user exits or
// the input stream ends. Normal exit returns nil.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.sess.Start(ctx); err != nil {
		return err
	}

	s.println(separator)
	s.println("Welcome to Expense Tracker!")
	if s.sess.Outcome() == storage.OutcomeFresh {
		s.println("Starting with an empty expense list.")
	}

	for {
		s.print(menu)
		choice, err := s.promptChoice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			err = s.addFlow(ctx)
		case 2:
			err = s.removeFlow(ctx)
		case 3:
			s.viewExpenses()
		case 4:
			err = s.monthlySummary()
		case 5:
			s.println("Thanks for using Expense Tracker!")
			s.println(separator)
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// promptChoice re-asks until it reads an integer between 1 and 5.
func (s *Shell) promptChoice() (int, error) {
	for {
		line, err := s.readLine("Which option do you want to use? (1-5): ")
		if err != nil {
			return 0, err
		}
		choice, err := parseChoice(line)
		switch {
		case errors.Is(err, errNotANumber):
			s.println("Please enter a valid integer")
		case errors.Is(err, errOutOfRange):
			s.println("Please choose between 1 and 5")
		default:
			return choice, nil
		}
	}
}

func (s *Shell) addFlow(ctx context.Context) error {
	s.println(separator)
	for {
		desc, err := s.promptText(
			"Enter short description of your expense: ",
			"Description cannot be empty, enter description again: ")
		if err != nil {
			return err
		}
		category, err := s.promptText(
			"Enter category of your expense (ex: food, travel, groceries): ",
			"Category cannot be empty, enter category again: ")
		if err != nil {
			return err
		}
		amount, err := s.promptAmount()
		if err != nil {
			return err
		}

		e := core.Expense{
			Date:        s.now(),
			Description: desc,
			Category:    category,
			Amount:      amount,
		}
		if err := s.sess.Add(ctx, e); err != nil {
			return fmt.Errorf("add expense: %w", err)
		}
		s.println("Your expense has been added.")

		again, err := s.askAgain("Do you want to add another expense? (yes/no): ")
		if err != nil {
			return err
		}
		if !again {
			s.println("Thank you for adding your expense.")
			s.println("Here's your updated expense details:")
			s.viewExpenses()
			break
		}
	}
	s.println(separator)
	return nil
}

func (s *Shell) removeFlow(ctx context.Context) error {
	s.println(separator)
	for {
		if s.sess.Len() == 0 {
			s.println("No Expenses Yet.")
			break
		}
		s.println("Here's your expense details:")
		s.viewExpenses()

		position, err := s.promptPosition()
		if err != nil {
			return err
		}
		if _, err := s.sess.RemoveAt(ctx, position); err != nil {
			if errors.Is(err, core.ErrPositionOutOfRange) {
				s.println("Enter a valid number")
				continue
			}
			return fmt.Errorf("remove expense: %w", err)
		}
		s.println("Your expense has been removed.")

		again, err := s.askAgain("Do you want to remove another expense? (yes/no): ")
		if err != nil {
			return err
		}
		if !again {
			s.println("Thank you for removing your expense.")
			s.println("Here's your updated expense details:")
			s.viewExpenses()
			break
		}
	}
	s.println(separator)
	return nil
}

func (s *Shell) viewExpenses() {
	s.println(separator)
	ledger := s.sess.Expenses()
	if len(ledger) == 0 {
		s.println("No Expenses Yet.")
	} else {
		for i, e := range ledger {
			s.printf("%d. Date : %s | Description : %s | Category : %s | Amount : $%s\n",
				i+1, e.Date, e.Description, e.Category, e.Amount.Display())
		}
	}
	s.println(separator)
}

func (s *Shell) monthlySummary() error {
	s.println(separator)
	totals, err := s.sess.MonthlyTotals()
	if err != nil {
		if errors.Is(err, core.ErrNoExpenses) {
			s.println("No Expenses Yet.")
			s.println(separator)
			return nil
		}
		return err
	}
	s.println("Here's your monthly expense summary:")
	for i, mt := range totals {
		s.printf("%d. %s => $%s\n", i+1, mt.Month, mt.Total.Display())
	}
	s.println(separator)
	return nil
}

// promptText re-asks until the trimmed input is non-empty.
func (s *Shell) promptText(prompt, retry string) (string, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return "", err
	}
	for strings.TrimSpace(line) == "" {
		line, err = s.readLine(retry)
		if err != nil {
			return "", err
		}
	}
	return line, nil
}

// promptAmount re-asks until the input parses as a non-negative amount.
func (s *Shell) promptAmount() (core.Money, error) {
	for {
		line, err := s.readLine("Enter amount of your expense: ")
		if err != nil {
			return core.Money{}, err
		}
		amount, err := core.ParseAmount(line)
		if err != nil {
			if strings.HasPrefix(strings.TrimSpace(line), "-") {
				s.println("Amount must be a positive number")
			} else {
				s.println("Please enter a valid input")
			}
			continue
		}
		return amount, nil
	}
}

// promptPosition re-asks until the input parses as an integer. Range
// checking is the session's call; the shell only rejects non-numbers here.
func (s *Shell) promptPosition() (int, error) {
	for {
		line, err := s.readLine("Enter number of expense you want to remove: ")
		if err != nil {
			return 0, err
		}
		position, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil {
			s.println("Please enter a valid input")
			continue
		}
		return position, nil
	}
}

// askAgain re-asks until the answer is yes or no.
func (s *Shell) askAgain(prompt string) (bool, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		s.println("Please respond with 'yes' or 'no'")
	}
}

var (
	errNotANumber = errors.New("not a number")
	errOutOfRange = errors.New("out of range")
)

func parseChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errNotANumber
	}
	if n < 1 || n > 5 {
		return 0, errOutOfRange
	}
	return n, nil
}

func (s *Shell) readLine(prompt string) (string, error) {
	s.print(prompt + "\n")
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) print(msg string) {
	fmt.Fprint(s.out, msg)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
