package converter

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func StrToObjectID(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

func ObjectIDToStr(id primitive.ObjectID) string {
	return id.Hex()
}
