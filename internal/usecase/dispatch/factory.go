package dispatch

import (
	"fmt"
	"strings"

	"notify-hub/internal/domain/entity"
)

// ChannelOrder is the fixed iteration order for dispatch. The order carries
// no delivery semantics but must be deterministic for testability.
var ChannelOrder = []string{"SMS", "Email", "Push"}

// ChannelByName returns the strategy for the given channel name.
// Lookup is case-insensitive. An unrecognized name returns
// entity.ErrInvalidChannel; callers must handle this synchronously,
// it is never converted into a delivery outcome.
func ChannelByName(name string) (Channel, error) {
	switch strings.ToLower(name) {
	case "sms":
		return NewSMSChannel(), nil
	case "email":
		return NewEmailChannel(), nil
	case "push":
		return NewPushChannel(), nil
	}
	return nil, fmt.Errorf("%w: %q", entity.ErrInvalidChannel, name)
}

// AllChannels returns the channel strategies in fixed dispatch order.
func AllChannels() []Channel {
	channels := make([]Channel, 0, len(ChannelOrder))
	for _, name := range ChannelOrder {
		ch, err := ChannelByName(name)
		if err != nil {
			// ChannelOrder only contains known names
			panic(err)
		}
		channels = append(channels, ch)
	}
	return channels
}
