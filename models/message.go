package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TypeMessage = "message"
	TypePrivate = "private_message"
	TypeStatus  = "status"

	// Broadcast is the reserved recipient name meaning every participant.
	Broadcast = "Todos"

	// DepartureText is the body of the status message recorded when an
	// inactive participant is evicted.
	DepartureText = "left the room..."

	// TimeLayout renders message timestamps as HH:mm:ss.
	TimeLayout = "15:04:05"
)

type Message struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	From string             `bson:"from" json:"from"`
	To   string             `bson:"to" json:"to"`
	Text string             `bson:"text" json:"text"`
	Type string             `bson:"type" json:"type"` // message, private_message, status
	Time string             `bson:"time" json:"time"`
}
