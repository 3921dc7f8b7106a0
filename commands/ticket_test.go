package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func guildRoles() []*discordgo.Role {
	return []*discordgo.Role{
		{ID: "r1", Name: "Helper"},
		{ID: "r2", Name: "Moderador"},
		{ID: "r3", Name: "Admin"},
		{ID: "r4", Name: "MM Bajo"},
		{ID: "r5", Name: "MM Medio"},
		{ID: "r6", Name: "MM Alto"},
		{ID: "r7", Name: "MM Jefe"},
		{ID: "r8", Name: "Miembro"},
	}
}

func TestMiddlemanStaffIDs(t *testing.T) {
	tests := []struct {
		name string
		tier string
		want []string
	}{
		{"tier bajo incluye al jefe", "Bajo", []string{"r4", "r7"}},
		{"tier medio incluye al jefe", "Medio", []string{"r5", "r7"}},
		{"tier alto incluye al jefe", "Alto", []string{"r6", "r7"}},
		{"tier jefe no duplica el rol", "Jefe", []string{"r7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := middlemanStaffIDs(guildRoles(), "MM Jefe", tt.tier)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			wantSet := make(map[string]bool)
			for _, id := range tt.want {
				wantSet[id] = true
			}
			for _, id := range got {
				if !wantSet[id] {
					t.Fatalf("unexpected role %s in %v (want %v)", id, got, tt.want)
				}
			}
		})
	}
}

func TestRoleIDsByName(t *testing.T) {
	got := roleIDsByName(guildRoles(), []string{"Helper", "Moderador", "Admin", "Fantasma"})
	want := []string{"r1", "r2", "r3"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestHasAllowedRole(t *testing.T) {
	allowed := []string{"Helper", "Moderador", "Admin", "MM Bajo", "MM Medio", "MM Alto", "MM Jefe"}

	tests := []struct {
		name    string
		roleIDs []string
		want    bool
	}{
		{"helper puede reclamar", []string{"r1"}, true},
		{"mm alto puede reclamar", []string{"r8", "r6"}, true},
		{"miembro normal no puede", []string{"r8"}, false},
		{"sin roles no puede", []string{}, false},
		{"rol desconocido no puede", []string{"r99"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasAllowedRole(tt.roleIDs, guildRoles(), allowed); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
