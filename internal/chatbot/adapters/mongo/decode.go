package mongo

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"client-portal-service/internal/chatbot/core/domain"
)

// decodeMenu maps a raw menu document. The id field is coerced to a string
// regardless of its stored bson type; when absent, the ObjectId hex is
// used. Missing submenu is left empty, which resolution treats as no match.
func decodeMenu(doc bson.M) domain.Menu {
	id := coerceString(doc["id"])
	if id == "" {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			id = oid.Hex()
		}
	}
	return domain.Menu{
		ID:      id,
		Submenu: coerceString(doc["submenu"]),
	}
}

func decodeInteraction(doc bson.M) domain.Interaction {
	return domain.Interaction{
		UserID:    coerceString(doc["phone_number"]),
		Option:    coerceString(doc["ultimo_mensaje"]),
		Timestamp: coerceString(doc["timestamp"]),
	}
}

// coerceString stringifies the bson value kinds the chatbot collections are
// known to hold. Absent values degrade to "" rather than erroring.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
