package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/entrhq/assistant/pkg/errs"
)

func handleHello(*Dispatcher, []string) (string, error) {
	return "How can I help you?", nil
}

func handleGoodBye(*Dispatcher, []string) (string, error) {
	return "Good bye!", nil
}

func handleHelp(d *Dispatcher, _ []string) (string, error) {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, cmd := range d.Commands() {
		fmt.Fprintf(&b, "  %-50s %s\n", cmd.synopsis(), cmd.Description)
	}
	b.WriteString("Names and titles are single words; use John_Wick for several.")
	return b.String(), nil
}

func handleAddContact(d *Dispatcher, args []string) (string, error) {
	birthday := ""
	if len(args) > 2 {
		birthday = args[2]
	}
	c, err := d.contacts.AddContact(args[0], args[1], birthday)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("Contact '%s' with phone %s added", c.Key(), args[1])
	if !c.Birthday().IsZero() {
		msg += fmt.Sprintf(", birthday %s", c.Birthday())
	}
	return msg + ".", nil
}

func handleDeleteContact(d *Dispatcher, args []string) (string, error) {
	if err := d.contacts.Delete(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact '%s' deleted.", args[0]), nil
}

func handleChangePhone(d *Dispatcher, args []string) (string, error) {
	c, err := d.contacts.EditPhone(args[0], args[1], args[2])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone of '%s' changed from %s to %s.", c.Key(), args[1], args[2]), nil
}

func handleRemovePhone(d *Dispatcher, args []string) (string, error) {
	c, err := d.contacts.RemovePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s removed from '%s'.", args[1], c.Key()), nil
}

func handleUpdateBirthday(d *Dispatcher, args []string) (string, error) {
	c, err := d.contacts.SetBirthday(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday of '%s' set to %s.", c.Key(), c.Birthday()), nil
}

func handlePhone(d *Dispatcher, args []string) (string, error) {
	c, ok := d.contacts.Find(args[0])
	if !ok {
		return "", fmt.Errorf("contact %q: %w", args[0], errs.ErrNotFound)
	}
	return fmt.Sprintf("%s: %s", c.Key(), strings.Join(c.PhoneStrings(), ", ")), nil
}

func handleCopyPhone(d *Dispatcher, args []string) (string, error) {
	c, ok := d.contacts.Find(args[0])
	if !ok {
		return "", fmt.Errorf("contact %q: %w", args[0], errs.ErrNotFound)
	}
	phones := strings.Join(c.PhoneStrings(), ", ")
	if err := d.clipboard.WriteAll(phones); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return fmt.Sprintf("Copied %s to the clipboard.", phones), nil
}

func handleShowContacts(d *Dispatcher, args []string) (string, error) {
	size, err := pageSizeArg(d, args)
	if err != nil {
		return "", err
	}
	if d.contacts.Len() == 0 {
		return "The address book is empty.", nil
	}

	var pages []string
	for page := range d.contacts.Pages(size) {
		rows := make([][]string, len(page))
		for i, c := range page {
			rows[i] = []string{
				c.Key(),
				strings.Join(c.PhoneStrings(), ", "),
				c.Birthday().String(),
				c.Email().String(),
				c.Address().String(),
			}
		}
		pages = append(pages, renderTable([]string{"Name", "Phones", "Birthday", "Email", "Address"}, rows))
	}
	return joinPages(pages), nil
}

func handleDaysToBirthday(d *Dispatcher, args []string) (string, error) {
	days, err := d.contacts.DaysToBirthday(args[0])
	if err != nil {
		return "", err
	}
	if days == 0 {
		return fmt.Sprintf("Today is %s's birthday!", args[0]), nil
	}
	return fmt.Sprintf("%d day(s) until %s's birthday.", days, args[0]), nil
}

func handleSearchContact(d *Dispatcher, args []string) (string, error) {
	matches, err := d.contacts.Search(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "No contacts found.", nil
	}

	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{strconv.Itoa(i + 1), m.Name, strings.Join(m.Phones, ", ")}
	}
	return renderTable([]string{"#", "Name", "Phones"}, rows), nil
}

func handleAddPhone(d *Dispatcher, args []string) (string, error) {
	c, err := d.contacts.AddPhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s added to '%s'.", args[1], c.Key()), nil
}

func handleAddAddress(d *Dispatcher, args []string) (string, error) {
	components := strings.Split(strings.Join(args[1:], " "), ",")
	c, err := d.contacts.SetAddress(args[0], components)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Address of '%s' set to %s.", c.Key(), c.Address()), nil
}

func handleAddEmail(d *Dispatcher, args []string) (string, error) {
	c, err := d.contacts.SetEmail(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Email of '%s' set to %s.", c.Key(), c.Email()), nil
}

func handleUpcomingBirthdays(d *Dispatcher, args []string) (string, error) {
	days := d.upcomingDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", errs.Invalid("days", args[0], "must be a whole number")
		}
		days = n
	}

	upcoming, err := d.contacts.UpcomingBirthdays(days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d day(s).", days), nil
	}

	rows := make([][]string, len(upcoming))
	for i, u := range upcoming {
		rows[i] = []string{u.Name, u.Birthday.String(), strconv.Itoa(u.Days)}
	}
	return renderTable([]string{"Name", "Birthday", "Days"}, rows), nil
}

// pageSizeArg reads the optional page size argument of the show commands.
func pageSizeArg(d *Dispatcher, args []string) (int, error) {
	if len(args) == 0 {
		return d.pageSize, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, errs.Invalid("page size", args[0], "must be a positive whole number")
	}
	return n, nil
}
