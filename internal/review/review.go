// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package review implements reviews on titles and comments on reviews.

# Architecture

  - Review: one per (author, title), enforced solely by the store's unique
    constraint — there is no check-then-insert, so concurrent duplicates
    collapse into a single winner and a Conflict.
  - Comment: free-form discussion under a review, no per-author limit.
  - Authorship always derives from the authenticated actor; moderators and
    admins may modify or delete content they do not own.
  - Ordering: newest first, everywhere.
*/
package review

import "time"

// Review is a scored opinion about a title.
type Review struct {
	ID        int64     `json:"id"`
	TitleID   int64     `json:"-"`
	AuthorID  string    `json:"-"`
	Author    string    `json:"author"`
	Score     int       `json:"score"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a reply attached to a review.
type Comment struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"-"`
	AuthorID  string    `json:"-"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
