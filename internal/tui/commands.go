package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"pet-adoption/internal/catalog"
	"pet-adoption/internal/client"
	"pet-adoption/internal/platform/httpclient"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) refreshCmd() tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		return refreshedMsg{err: b.Refresh(ctx)}
	}
}

func (m Model) likeCmd(id int64) tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		liked, err := b.ToggleLike(ctx, id)
		return likedMsg{id: id, liked: liked, err: err}
	}
}

func (m Model) adoptCmd(in client.AdoptionInput, petName string) tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		_, err := b.Adopt(ctx, in)
		return savedMsg{action: actionAdopt, name: petName, err: err}
	}
}

func (m Model) deleteCmd(p catalog.Pet) tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		return savedMsg{action: actionDelete, name: p.Name, err: b.DeletePet(ctx, p.ID)}
	}
}

func (m Model) createCmd(in client.PetInput, path string) tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		file, done, err := openUpload(path)
		if err != nil {
			return savedMsg{action: actionCreate, name: in.Name, err: err}
		}
		defer done()
		_, err = b.CreatePet(ctx, in, file)
		return savedMsg{action: actionCreate, name: in.Name, err: err}
	}
}

func (m Model) updateCmd(patch client.PetPatch, name, path string) tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		file, done, err := openUpload(path)
		if err != nil {
			return savedMsg{action: actionUpdate, name: name, err: err}
		}
		defer done()
		_, err = b.UpdatePet(ctx, patch, file)
		return savedMsg{action: actionUpdate, name: name, err: err}
	}
}

func (m Model) reviewCmd(in client.ReviewInput, path string) tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		file, done, err := openUpload(path)
		if err != nil {
			return savedMsg{action: actionReview, name: in.Name, err: err}
		}
		defer done()
		_, err = b.SubmitReview(ctx, in, file)
		return savedMsg{action: actionReview, name: in.Name, err: err}
	}
}

// openUpload abre un archivo local para subirlo. path vacío => sin archivo.
func openUpload(path string) (*httpclient.File, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open %s: %w", path, err)
	}
	return &httpclient.File{
		Name:     filepath.Base(path),
		Content:  f,
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
	}, func() { _ = f.Close() }, nil
}
