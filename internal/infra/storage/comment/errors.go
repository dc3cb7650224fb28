package comment

import "errors"

var (
	// ErrCommentNotFound возвращается, когда заметка не найдена
	ErrCommentNotFound = errors.New("comment.repository: comment not found")

	// ErrEmptyComment возвращается, когда текст заметки пуст после обрезки
	ErrEmptyComment = errors.New("comment.repository: empty comment text")
)
