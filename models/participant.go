package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Participant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	LastStatus int64              `bson:"lastStatus" json:"lastStatus"` // ms since epoch
}
