package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/entrhq/assistant/pkg/notes"
)

// splitTags separates trailing #words from the rest of the arguments.
func splitTags(args []string) (words, tags []string) {
	end := len(args)
	for end > 0 && strings.HasPrefix(args[end-1], "#") {
		end--
	}
	return args[:end], args[end:]
}

func handleAddNote(d *Dispatcher, args []string) (string, error) {
	words, tags := splitTags(args[1:])
	n, err := d.notes.AddNote(args[0], strings.Join(words, " "), tags)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("Note '%s' added", n.Key())
	if len(n.Tags()) > 0 {
		msg += " with tags " + strings.Join(n.Tags(), ", ")
	}
	return msg + ".", nil
}

func handleDeleteNote(d *Dispatcher, args []string) (string, error) {
	if err := d.notes.DeleteNote(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note '%s' deleted.", args[0]), nil
}

func handleShowNotes(d *Dispatcher, args []string) (string, error) {
	size, err := pageSizeArg(d, args)
	if err != nil {
		return "", err
	}
	if d.notes.Count() == 0 {
		return "The notebook is empty.", nil
	}

	var pages []string
	for page := range d.notes.Pages(size) {
		pages = append(pages, notesTable(page))
	}
	return joinPages(pages), nil
}

func handleSearchNote(d *Dispatcher, args []string) (string, error) {
	found, err := d.notes.Search(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "No notes found.", nil
	}
	return notesTable(found), nil
}

func handleAddTags(d *Dispatcher, args []string) (string, error) {
	n, err := d.notes.AddTags(args[0], args[1:])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note '%s' is tagged %s.", n.Key(), strings.Join(n.Tags(), ", ")), nil
}

func handleChangeTitle(d *Dispatcher, args []string) (string, error) {
	n, err := d.notes.ChangeTitle(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note '%s' renamed to '%s'.", args[0], n.Key()), nil
}

func handleChangeContent(d *Dispatcher, args []string) (string, error) {
	n, err := d.notes.ChangeContent(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Content of note '%s' updated.", n.Key()), nil
}

func handleShowTags(d *Dispatcher, _ []string) (string, error) {
	tags := d.notes.ListTags()
	if len(tags) == 0 {
		return "No tags yet.", nil
	}
	return "Tags: " + strings.Join(tags, ", "), nil
}

func handleNotesByTag(d *Dispatcher, args []string) (string, error) {
	found, err := d.notes.FilterByTag(args[0])
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return fmt.Sprintf("No notes tagged %s.", args[0]), nil
	}
	return notesTable(found), nil
}

func notesTable(list []*notes.Note) string {
	rows := make([][]string, len(list))
	for i, n := range list {
		rows[i] = []string{strconv.Itoa(i + 1), n.Key(), n.Content().String(), strings.Join(n.Tags(), ", ")}
	}
	return renderTable([]string{"#", "Title", "Content", "Tags"}, rows)
}
