package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewRootID() RootID {
	return RootID(uuid.NewString())
}

func NewCredID() CredID {
	return CredID(uuid.NewString())
}

func NewEnvURLID() EnvURLID {
	return EnvURLID(uuid.NewString())
}
