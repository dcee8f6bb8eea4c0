package engine

// keysym.go converts X11 keysyms into runes for hosts (like the D-Bus
// daemon) that receive raw keysym values from a low-level keyboard
// hook, grounded on the teacher's composition.go keysymToRune.

// KeysymToRune converts an X11 keysym to the rune it represents, or 0
// if the keysym has no direct Unicode rendering (function keys,
// modifiers, etc).
func KeysymToRune(keysym uint32) rune {
	// ASCII printable characters (0x20 - 0x7E)
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}

	// Latin-1 supplement (0xA0 - 0xFF)
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}

	// Unicode keysyms (0x01000000 + unicode codepoint)
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}

	return 0
}
