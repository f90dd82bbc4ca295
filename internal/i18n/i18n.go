// Package i18n looks up user-facing strings in gettext catalogs.
// Message ids are the English strings, so an absent catalog leaves text
// untranslated instead of failing.
package i18n

import (
	"github.com/leonelquinteros/gotext"
)

// Message ids shared by the front ends.
const (
	MsgMoves      = "Moves: %d"
	MsgPushes     = "Pushes: %d"
	MsgTargets    = "Targets: %d/%d"
	MsgElapsed    = "Time: %s"
	MsgVictory    = "Victory!"
	MsgSolvedIn   = "Solved in %d moves"
	MsgAfterWin   = "r restart · q quit"
	MsgTooSmall   = "Terminal too small"
	MsgHelpMove   = "move"
	MsgHelpReset  = "restart"
	MsgHelpQuit   = "quit"
	MsgHelpToggle = "help"
)

// Configure loads <dir>/<lang>/LC_MESSAGES/<domain>.po as the active catalog.
func Configure(dir, lang, domain string) {
	gotext.Configure(dir, lang, domain)
}

// T translates msgid and formats it with vars when any are given.
func T(msgid string, vars ...interface{}) string {
	return gotext.Get(msgid, vars...)
}

// Language returns the active language code.
func Language() string {
	return gotext.GetLanguage()
}
