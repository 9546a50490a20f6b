package models

import "time"

// AudioMapping links a (user, phrase) pair to its stored object.
type AudioMapping struct {
	UserID     string    `json:"userId"`
	PhraseID   string    `json:"phraseId"`
	ObjectName string    `json:"objectName"`
	Data       []byte    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}
