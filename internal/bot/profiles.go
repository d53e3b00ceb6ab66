// ABOUTME: Representative profiles built once from static configuration.
// ABOUTME: One canonical identity per representative type.

package bot

import "github.com/2389/bizmsg-gateway/internal/bizmsg"

// Profiles holds the display identities for the two representative types.
type Profiles struct {
	BotName     string
	BotAvatar   string
	HumanName   string
	HumanAvatar string
}

// DefaultProfiles returns the sample bot and live agent identities.
func DefaultProfiles() Profiles {
	return Profiles{
		BotName:     DefaultBotName,
		BotAvatar:   DefaultBotAvatar,
		HumanName:   DefaultLiveAgentName,
		HumanAvatar: DefaultLiveAgentAvatar,
	}
}

// Representative builds the representative for the given type.
func (p Profiles) Representative(t bizmsg.RepresentativeType) *bizmsg.Representative {
	if t == bizmsg.RepresentativeTypeHuman {
		return &bizmsg.Representative{
			RepresentativeType: bizmsg.RepresentativeTypeHuman,
			DisplayName:        p.HumanName,
			AvatarImage:        p.HumanAvatar,
		}
	}
	return &bizmsg.Representative{
		RepresentativeType: bizmsg.RepresentativeTypeBot,
		DisplayName:        p.BotName,
		AvatarImage:        p.BotAvatar,
	}
}
