package domain

import "strconv"

type ActorType string

const (
	ActorUser            ActorType = "user"
	ActorVendor          ActorType = "vendor"
	ActorAdmin           ActorType = "admin"
	ActorPaymentProvider ActorType = "payment-provider"
	ActorAnonymous       ActorType = "anonymous"
)

func ActorString(t ActorType, id uint64) string {
	if id == 0 {
		return string(t)
	}
	return string(t) + ":" + strconv.FormatUint(id, 10)
}
