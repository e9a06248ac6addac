package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"servicehub-backend/internal/models"
)

func TestConversationParticipants(t *testing.T) {
	clientID := uuid.New()
	providerID := uuid.New()
	conv := &models.Conversation{
		ID:         uuid.New(),
		ClientID:   clientID,
		ProviderID: providerID,
	}

	assert.True(t, conv.HasParticipant(clientID))
	assert.True(t, conv.HasParticipant(providerID))
	assert.False(t, conv.HasParticipant(uuid.New()))

	assert.Equal(t, providerID, conv.OtherParticipant(clientID))
	assert.Equal(t, clientID, conv.OtherParticipant(providerID))
}
