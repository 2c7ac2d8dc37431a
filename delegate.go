package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type delegateKeyMap struct {
	filterCategory key.Binding
	sortDate       key.Binding
	sortAmount     key.Binding
	sortName       key.Binding
	reverse        key.Binding
}

func newDelegateKeyMap() delegateKeyMap {
	return delegateKeyMap{
		filterCategory: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle category"),
		),
		sortDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "sort by date"),
		),
		sortAmount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "sort by amount"),
		),
		sortName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort by name"),
		),
		reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse order"),
		),
	}
}

func (m model) newItemDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()

	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(m.theme.Primary).
		BorderLeftForeground(m.theme.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(m.theme.SecondaryText).
		BorderLeftForeground(m.theme.Primary)

	keys := newDelegateKeyMap()
	delegate.ShortHelpFunc = func() []key.Binding {
		return []key.Binding{keys.filterCategory, keys.sortAmount, keys.reverse}
	}
	delegate.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{{
			keys.filterCategory,
			keys.sortDate,
			keys.sortAmount,
			keys.sortName,
			keys.reverse,
		}}
	}

	return delegate
}
