package models

// Todo is a single to-do item with a one-to-one relation to User via UserID.
// It maps to the `todos` table. UserID never leaves the server; clients only
// ever see their own items.
type Todo struct {
	ID        int64  `db:"id" json:"id"`
	Text      string `db:"text" json:"text"`
	Completed bool   `db:"completed" json:"completed"`
	UserID    int64  `db:"user_id" json:"-"`
}
