package commands

func builtins() []*Command {
	return []*Command{
		{Name: "hello", Description: "Greet the assistant", Handler: handleHello},
		{Name: "help", Description: "List the available commands", Handler: handleHelp},
		{Name: "good bye", Description: "End the session", Exit: true, Handler: handleGoodBye},
		{Name: "close", Description: "End the session", Exit: true, Handler: handleGoodBye},
		{Name: "exit", Description: "End the session", Exit: true, Handler: handleGoodBye},

		{
			Name:        "add contact",
			Usage:       "<name> <phone> [birthday]",
			Description: "Add a contact with one phone and an optional birthday",
			MinArgs:     2,
			Handler:     handleAddContact,
		},
		{
			Name:        "delete contact",
			Usage:       "<name>",
			Description: "Delete a contact",
			MinArgs:     1,
			Handler:     handleDeleteContact,
		},
		{
			Name:        "change",
			Usage:       "<name> <old phone> <new phone>",
			Description: "Replace one of a contact's phones",
			MinArgs:     3,
			Handler:     handleChangePhone,
		},
		{
			Name:        "remove phone",
			Usage:       "<name> <phone>",
			Description: "Remove a phone from a contact",
			MinArgs:     2,
			Handler:     handleRemovePhone,
		},
		{
			Name:        "update birthday",
			Usage:       "<name> <date>",
			Description: "Set a contact's birthday (YYYY-MM-DD, DD-MM-YYYY or DD.MM.YYYY)",
			MinArgs:     2,
			Handler:     handleUpdateBirthday,
		},
		{
			Name:        "phone",
			Usage:       "<name>",
			Description: "Show a contact's phones",
			MinArgs:     1,
			Handler:     handlePhone,
		},
		{
			Name:        "copy phone",
			Usage:       "<name>",
			Description: "Copy a contact's phones to the clipboard",
			MinArgs:     1,
			Handler:     handleCopyPhone,
		},
		{
			Name:        "show all contacts",
			Usage:       "[page size]",
			Description: "List every contact, page by page",
			Handler:     handleShowContacts,
		},
		{
			Name:        "show days to birthday",
			Usage:       "<name>",
			Description: "Days until a contact's next birthday",
			MinArgs:     1,
			Handler:     handleDaysToBirthday,
		},
		{
			Name:        "search contact",
			Usage:       "<text>",
			Description: "Find contacts by part of a name or phone",
			MinArgs:     1,
			Handler:     handleSearchContact,
		},
		{
			Name:        "add phone",
			Usage:       "<name> <phone>",
			Description: "Add another phone to a contact",
			MinArgs:     2,
			Handler:     handleAddPhone,
		},
		{
			Name:        "add address",
			Usage:       "<name> <country, city, street, ...>",
			Description: "Set a contact's address; separate parts with commas",
			MinArgs:     2,
			Handler:     handleAddAddress,
		},
		{
			Name:        "add email",
			Usage:       "<name> <email>",
			Description: "Set a contact's email",
			MinArgs:     2,
			Handler:     handleAddEmail,
		},
		{
			Name:        "upcoming birthdays",
			Usage:       "[days]",
			Description: "Contacts with a birthday in the next days",
			Handler:     handleUpcomingBirthdays,
		},

		{
			Name:        "add note",
			Usage:       "<title> <content...> [#tag...]",
			Description: "Add a note; trailing #words become tags",
			MinArgs:     2,
			Handler:     handleAddNote,
		},
		{
			Name:        "delete note",
			Usage:       "<title>",
			Description: "Delete a note",
			MinArgs:     1,
			Handler:     handleDeleteNote,
		},
		{
			Name:        "show all notes",
			Usage:       "[page size]",
			Description: "List every note, page by page",
			Handler:     handleShowNotes,
		},
		{
			Name:        "search note",
			Usage:       "<text>",
			Description: "Find notes by title, content or tag",
			MinArgs:     1,
			Handler:     handleSearchNote,
		},
		{
			Name:        "add tags",
			Usage:       "<title> <tag...>",
			Description: "Tag a note",
			MinArgs:     2,
			Handler:     handleAddTags,
		},
		{
			Name:        "change note's title",
			Usage:       "<old title> <new title>",
			Description: "Rename a note",
			MinArgs:     2,
			Handler:     handleChangeTitle,
		},
		{
			Name:        "change note's content",
			Usage:       "<title> <content...>",
			Description: "Replace a note's text",
			MinArgs:     2,
			Handler:     handleChangeContent,
		},
		{Name: "show tags", Description: "List every tag in use", Handler: handleShowTags},
		{
			Name:        "notes by tag",
			Usage:       "<pattern>",
			Description: "Notes with a tag matching a pattern such as work*",
			MinArgs:     1,
			Handler:     handleNotesByTag,
		},
	}
}
