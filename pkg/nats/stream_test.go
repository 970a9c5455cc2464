package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectRoundTrip(t *testing.T) {
	subject := Subject("knowledge_store.built")

	assert.Equal(t, "knowex.knowledge_store.built", subject)
	assert.Equal(t, "knowledge_store.built", EventTypeFromSubject(subject))
	assert.Equal(t, "other.thing", EventTypeFromSubject("other.thing"))
}
