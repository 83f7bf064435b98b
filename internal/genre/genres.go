// Package genre serves the curated "top books by genre" shelves shown on
// the genre detail pages. Static editorial data, keyed by slug.
package genre

import "errors"

var ErrGenreNotFound = errors.New("genre not found")

type ShelfBook struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Cover  string `json:"cover"`
	Year   string `json:"year"`
}

type Genre struct {
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Books       []ShelfBook `json:"books"`
}

var genres = map[string]Genre{
	"classics": {
		Slug:        "classics",
		Name:        "Classic Tales",
		Description: "Timeless literary works that have stood the test of time and continue to captivate readers across generations.",
		Books: []ShelfBook{
			{ID: "c1", Title: "Pride and Prejudice", Author: "Jane Austen", Cover: "/covers/pride-and-prejudice.jpg", Year: "1813"},
			{ID: "c2", Title: "To Kill a Mockingbird", Author: "Harper Lee", Cover: "/covers/to-kill-a-mockingbird.jpg", Year: "1960"},
			{ID: "c3", Title: "Great Expectations", Author: "Charles Dickens", Cover: "/covers/great-expectations.jpg", Year: "1861"},
			{ID: "c4", Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Cover: "/covers/crime-and-punishment.jpg", Year: "1866"},
			{ID: "c5", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Cover: "/covers/the-great-gatsby.jpg", Year: "1925"},
			{ID: "c6", Title: "Moby Dick", Author: "Herman Melville", Cover: "/covers/moby-dick.jpg", Year: "1851"},
			{ID: "c7", Title: "Jane Eyre", Author: "Charlotte Brontë", Cover: "/covers/jane-eyre.jpg", Year: "1847"},
			{ID: "c8", Title: "Wuthering Heights", Author: "Emily Brontë", Cover: "/covers/wuthering-heights.jpg", Year: "1847"},
			{ID: "c9", Title: "Anna Karenina", Author: "Leo Tolstoy", Cover: "/covers/anna-karenina.jpg", Year: "1878"},
			{ID: "c10", Title: "The Scarlet Letter", Author: "Nathaniel Hawthorne", Cover: "/covers/the-scarlet-letter.jpg", Year: "1850"},
		},
	},
	"adventure": {
		Slug:        "adventure",
		Name:        "Adventures",
		Description: "Thrilling tales of journeys, exploration, and daring quests that take readers on exciting escapades around the world and beyond.",
		Books: []ShelfBook{
			{ID: "a1", Title: "The Hobbit", Author: "J.R.R. Tolkien", Cover: "/covers/the-hobbit.jpg", Year: "1937"},
			{ID: "a2", Title: "Treasure Island", Author: "Robert Louis Stevenson", Cover: "/covers/treasure-island.jpg", Year: "1883"},
			{ID: "a3", Title: "Around the World in 80 Days", Author: "Jules Verne", Cover: "/covers/around-the-world.jpg", Year: "1873"},
			{ID: "a4", Title: "Robinson Crusoe", Author: "Daniel Defoe", Cover: "/covers/robinson-crusoe.jpg", Year: "1719"},
			{ID: "a5", Title: "The Three Musketeers", Author: "Alexandre Dumas", Cover: "/covers/three-musketeers.jpg", Year: "1844"},
			{ID: "a6", Title: "Journey to the Center of the Earth", Author: "Jules Verne", Cover: "/covers/journey-center-earth.jpg", Year: "1864"},
			{ID: "a7", Title: "The Call of the Wild", Author: "Jack London", Cover: "/covers/call-of-the-wild.jpg", Year: "1903"},
			{ID: "a8", Title: "King Solomon's Mines", Author: "H. Rider Haggard", Cover: "/covers/king-solomons-mines.jpg", Year: "1885"},
			{ID: "a9", Title: "The Odyssey", Author: "Homer", Cover: "/covers/the-odyssey.jpg", Year: "8th century BC"},
			{ID: "a10", Title: "Moby Dick", Author: "Herman Melville", Cover: "/covers/moby-dick.jpg", Year: "1851"},
		},
	},
	"mystery": {
		Slug:        "mystery",
		Name:        "Mystery",
		Description: "Intriguing stories filled with suspense, clues, and unexpected twists that challenge readers to solve complex puzzles alongside clever detectives.",
		Books: []ShelfBook{
			{ID: "m1", Title: "The Hound of the Baskervilles", Author: "Arthur Conan Doyle", Cover: "/covers/hound-baskervilles.jpg", Year: "1902"},
			{ID: "m2", Title: "Murder on the Orient Express", Author: "Agatha Christie", Cover: "/covers/orient-express.jpg", Year: "1934"},
			{ID: "m3", Title: "The Maltese Falcon", Author: "Dashiell Hammett", Cover: "/covers/maltese-falcon.jpg", Year: "1930"},
			{ID: "m4", Title: "The Girl with the Dragon Tattoo", Author: "Stieg Larsson", Cover: "/covers/dragon-tattoo.jpg", Year: "2005"},
			{ID: "m5", Title: "Gone Girl", Author: "Gillian Flynn", Cover: "/covers/gone-girl.jpg", Year: "2012"},
			{ID: "m6", Title: "The Da Vinci Code", Author: "Dan Brown", Cover: "/covers/da-vinci-code.jpg", Year: "2003"},
			{ID: "m7", Title: "In the Woods", Author: "Tana French", Cover: "/covers/in-the-woods.jpg", Year: "2007"},
			{ID: "m8", Title: "The Big Sleep", Author: "Raymond Chandler", Cover: "/covers/big-sleep.jpg", Year: "1939"},
			{ID: "m9", Title: "The Woman in White", Author: "Wilkie Collins", Cover: "/covers/woman-in-white.jpg", Year: "1859"},
			{ID: "m10", Title: "The Silent Patient", Author: "Alex Michaelides", Cover: "/covers/silent-patient.jpg", Year: "2019"},
		},
	},
	"fantasy": {
		Slug:        "fantasy",
		Name:        "Fantasy",
		Description: "Imaginative worlds of magic, mythical creatures, and epic quests where the impossible becomes possible.",
		Books: []ShelfBook{
			{ID: "f1", Title: "A Game of Thrones", Author: "George R.R. Martin", Cover: "/covers/game-of-thrones.jpg", Year: "1996"},
			{ID: "f2", Title: "The Name of the Wind", Author: "Patrick Rothfuss", Cover: "/covers/name-of-the-wind.jpg", Year: "2007"},
			{ID: "f3", Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Cover: "/covers/fellowship.jpg", Year: "1954"},
			{ID: "f4", Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", Cover: "/covers/earthsea.jpg", Year: "1968"},
			{ID: "f5", Title: "Mistborn: The Final Empire", Author: "Brandon Sanderson", Cover: "/covers/mistborn.jpg", Year: "2006"},
			{ID: "f6", Title: "The Lies of Locke Lamora", Author: "Scott Lynch", Cover: "/covers/locke-lamora.jpg", Year: "2006"},
			{ID: "f7", Title: "American Gods", Author: "Neil Gaiman", Cover: "/covers/american-gods.jpg", Year: "2001"},
			{ID: "f8", Title: "The Night Circus", Author: "Erin Morgenstern", Cover: "/covers/night-circus.jpg", Year: "2011"},
			{ID: "f9", Title: "Jonathan Strange & Mr Norrell", Author: "Susanna Clarke", Cover: "/covers/strange-norrell.jpg", Year: "2004"},
			{ID: "f10", Title: "The Last Unicorn", Author: "Peter S. Beagle", Cover: "/covers/last-unicorn.jpg", Year: "1968"},
		},
	},
}

func GetBySlug(slug string) (Genre, error) {
	g, ok := genres[slug]
	if !ok {
		return Genre{}, ErrGenreNotFound
	}
	return g, nil
}
