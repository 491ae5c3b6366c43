package entity

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource derives stable entity IDs. An ID is a name-based UUID over the
// seed, the system index and the entity's path key, so the same entity gets
// the same ID whether its system is generated alone or in a batch.
type IDSource struct {
	namespace uuid.UUID
}

func NewIDSource(seed string) IDSource {
	return IDSource{namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte("planets-generator/"+seed))}
}

// ID returns the identifier of key within system index.
func (s IDSource) ID(systemIndex int, key string) string {
	return uuid.NewSHA1(s.namespace, []byte(strconv.Itoa(systemIndex)+"|"+key)).String()
}
