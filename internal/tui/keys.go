// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	forceQ  key.Binding
	whoami  key.Binding
	logout  key.Binding
	copy    key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("q")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	whoami:  key.NewBinding(key.WithKeys("w")),
	logout:  key.NewBinding(key.WithKeys("l")),
	copy:    key.NewBinding(key.WithKeys("c")),
}
