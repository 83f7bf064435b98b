// Package blog serves the reading-blog posts. Storage is static sample
// data; no persistence path exists for posts or comments.
package blog

import "errors"

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

var posts = []Post{
	{
		ID:      "1",
		Title:   "The Magic of Reading Fantasy",
		Excerpt: "Exploring how fantasy literature helps us understand our own reality through magical metaphors...",
		Content: "Fantasy literature has always been more than escapism. Behind every dragon and enchanted forest lies a mirror held up to our own world, letting us examine questions of power, loyalty and loss at a safe remove. The best fantasy writers understand that magic works as metaphor: the one ring is addiction, the patronus is memory, the wall in the north is every border ever drawn.",
		Author:  "Eleanor Walsh",
		Date:    "2024-03-12",
	},
	{
		ID:      "2",
		Title:   "Why Classic Literature Still Matters",
		Excerpt: "Discussing the timeless nature of classic books and their relevance in our modern world...",
		Content: "It is tempting to treat the classics as homework, something to be endured rather than enjoyed. But pick up Austen or Dostoevsky without the weight of obligation and you find writers wrestling with the same questions we still cannot answer: how to live well, what we owe each other, and what to do about the gap between who we are and who we meant to be.",
		Author:  "Marcus Liehmann",
		Date:    "2024-02-27",
	},
	{
		ID:      "3",
		Title:   "Building a Reading Habit That Sticks",
		Excerpt: "Practical notes on reading more without turning it into another chore on the list...",
		Content: "The readers who finish fifty books a year are rarely the ones with the most free time. They are the ones who keep a book within arm's reach, who read ten pages while the kettle boils, and who abandon without guilt anything that stops earning its place. A reading habit survives on permission, not discipline.",
		Author:  "Priya Nathan",
		Date:    "2024-01-09",
	},
}

// All returns every post, newest first as authored.
func All() []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}

func GetByID(id string) (Post, error) {
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return Post{}, ErrPostNotFound
}
