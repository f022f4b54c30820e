// Package profile holds the authenticated-identity record a launch
// attempt runs under.
package profile

import (
	"crypto/md5"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/craftline/craftline/game/authenticator"
)

type Memory struct {
	Xmx int `json:"xmx"` // maximum memory in GB
	Xms int `json:"xms"` // minimum memory in GB
}

func (m Memory) ToArgs() []string {
	return []string{
		"-Xmx" + strconv.Itoa(m.Xmx) + "G",
		"-Xms" + strconv.Itoa(m.Xms) + "G",
	}
}

// GameProfile is the opaque identity record consumed by the argument
// resolver: who is playing, with which token, and under which launch
// flags. It is produced either offline or by an authenticator.
type GameProfile struct {
	Username        string     `json:"username"`
	UUID            *uuid.UUID `json:"uuid"`
	UserType        string     `json:"userType"`
	AccessToken     string     `json:"accessToken"`
	ClientID        string     `json:"clientId"`
	XUID            string     `json:"xuid"`
	Memory          Memory     `json:"memory"`
	IsDemoUser      bool       `json:"isDemoUser"`
	IsAuthenticated bool       `json:"isAuthenticated"`
}

// offlineUUID derives the UUID the game computes for offline players:
// an MD5 of the raw "OfflinePlayer:<name>" bytes with the version-3 and
// variant bits set, as Java's UUID.nameUUIDFromBytes does. There is no
// namespace prefix in this scheme.
func offlineUUID(username string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.UUID(sum)
}

// NewOfflineProfile builds an unauthenticated profile. The UUID is the
// name-based one the game itself derives for offline players.
func NewOfflineProfile(username string) *GameProfile {
	id := offlineUUID(username)
	return &GameProfile{
		Username: username,
		UUID:     &id,
		UserType: string(authenticator.UNKNOWN),
		ClientID: "0",
		XUID:     "0",
		Memory:   Memory{Xmx: 4, Xms: 2},
	}
}

func (g *GameProfile) SetMemory(xmx int, xms int) {
	g.Memory.Xmx = xmx
	g.Memory.Xms = xms
}

func (g *GameProfile) UUIDString() string {
	if g.UUID == nil {
		return uuid.Nil.String()
	}
	return g.UUID.String()
}

// AuthenticateWithCode runs the authenticator's code exchange and fills
// the profile from the resulting identity record.
func (g *GameProfile) AuthenticateWithCode(auth authenticator.Authenticator, code string) error {
	response, err := auth.AuthenticateWithCode(code)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(response.UserUUID)
	if err != nil {
		return errors.Wrapf(err, "parsing profile uuid %q", response.UserUUID)
	}

	g.UUID = &id
	g.Username = response.UserName
	g.UserType = string(auth.GetType())
	g.AccessToken = response.Token
	g.IsAuthenticated = true
	return nil
}
