package main

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type chatRole int

const (
	chatRoleUser chatRole = iota
	chatRoleAssistant
)

type chatMessage struct {
	role chatRole
	text string
}

type chatReplyMsg struct {
	reply string
	err   error
}

// askAssistant sends the question and the current snapshot to the
// configured provider.
func (m model) askAssistant(question string) tea.Cmd {
	provider := m.assistant
	snapshot := m.snapshot()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		reply, err := provider.Ask(ctx, question, snapshot)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m model) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" && !m.chatWaiting {
		question := strings.TrimSpace(m.chatInput.Value())
		if question == "" {
			return m, nil
		}

		m.chatHistory = append(m.chatHistory, chatMessage{role: chatRoleUser, text: question})
		m.chatInput.Reset()
		m.chatWaiting = true
		m.renderChatHistory()

		return m, m.askAssistant(question)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	cmds = append(cmds, cmd)
	m.chatViewport, cmd = m.chatViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) handleChatReply(msg chatReplyMsg) (tea.Model, tea.Cmd) {
	m.chatWaiting = false

	if msg.err != nil {
		log.Error("chat provider failed", "error", msg.err)
		m.chatHistory = append(m.chatHistory, chatMessage{
			role: chatRoleAssistant,
			text: "sorry, I could not answer that: " + msg.err.Error(),
		})
	} else {
		m.chatHistory = append(m.chatHistory, chatMessage{role: chatRoleAssistant, text: msg.reply})
	}

	m.renderChatHistory()

	return m, nil
}

func (m *model) renderChatHistory() {
	var b strings.Builder
	for i, msg := range m.chatHistory {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.role {
		case chatRoleUser:
			b.WriteString(m.styles.titleStyle.Render("you: "))
		case chatRoleAssistant:
			b.WriteString(m.styles.incomeStyle.Render("pluto: "))
		}
		b.WriteString(msg.text)
	}

	m.chatViewport.SetContent(b.String())
	m.chatViewport.GotoBottom()
}

func (m model) chatView() string {
	var b strings.Builder

	if len(m.chatHistory) == 0 {
		b.WriteString(m.styles.statusStyle.Render("ask anything about your finances, esc to leave"))
	} else {
		b.WriteString(m.chatViewport.View())
	}
	b.WriteString("\n\n")

	if m.chatWaiting {
		b.WriteString(m.styles.statusStyle.Render("thinking..."))
	} else {
		b.WriteString(m.chatInput.View())
	}

	return b.String()
}
