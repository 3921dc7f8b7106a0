package handlers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestPickWelcomeChannel(t *testing.T) {
	hints := []string{"bienvenida", "welcome"}

	tests := []struct {
		name     string
		channels []*discordgo.Channel
		system   string
		want     string
	}{
		{
			name: "prefiere el canal de bienvenida",
			channels: []*discordgo.Channel{
				{ID: "c1", Name: "general", Type: discordgo.ChannelTypeGuildText},
				{ID: "c2", Name: "👋-bienvenida", Type: discordgo.ChannelTypeGuildText},
			},
			system: "c1",
			want:   "c2",
		},
		{
			name: "acepta welcome en inglés",
			channels: []*discordgo.Channel{
				{ID: "c1", Name: "welcome-here", Type: discordgo.ChannelTypeGuildText},
			},
			system: "",
			want:   "c1",
		},
		{
			name: "ignora canales que no son de texto",
			channels: []*discordgo.Channel{
				{ID: "c1", Name: "bienvenida", Type: discordgo.ChannelTypeGuildVoice},
			},
			system: "c9",
			want:   "c9",
		},
		{
			name:     "sin coincidencias cae al canal de sistema",
			channels: []*discordgo.Channel{{ID: "c1", Name: "general", Type: discordgo.ChannelTypeGuildText}},
			system:   "c9",
			want:     "c9",
		},
		{
			name:     "sin canal de sistema devuelve vacío",
			channels: nil,
			system:   "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickWelcomeChannel(tt.channels, hints, tt.system); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
