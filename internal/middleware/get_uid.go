package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID reads the user_id the JWT middleware stored in Locals and
// converts it to an ObjectID. Returns NilObjectID for anonymous requests.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	v := c.Locals("user_id")
	uid, ok := v.(string)
	if !ok || uid == "" {
		return bson.NilObjectID, fiber.ErrUnauthorized
	}

	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, fiber.ErrUnauthorized
	}
	return oid, nil
}
