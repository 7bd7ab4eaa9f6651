// Package tui es el navegador de terminal: secciones home y pets, búsqueda,
// paginación y los modales (ver, adoptar, reseña, alta/edición, borrar, gracias).
package tui

import (
	"context"
	"fmt"

	"pet-adoption/internal/catalog"
	"pet-adoption/internal/client"
	"pet-adoption/internal/platform/httpclient"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Backend es lo que la TUI necesita de la sesión. *client.Session lo implementa.
type Backend interface {
	Refresh(ctx context.Context) error
	Home() client.Home
	Search(query string, page int, fields ...catalog.Field) catalog.Page[catalog.Pet]
	ToggleLike(ctx context.Context, id int64) (bool, error)
	CreatePet(ctx context.Context, in client.PetInput, file *httpclient.File) (catalog.Pet, error)
	UpdatePet(ctx context.Context, patch client.PetPatch, file *httpclient.File) (catalog.Pet, error)
	DeletePet(ctx context.Context, id int64) error
	Adopt(ctx context.Context, in client.AdoptionInput) (catalog.Adoption, error)
	SubmitReview(ctx context.Context, in client.ReviewInput, file *httpclient.File) (catalog.Review, error)
}

type section int

const (
	sectionHome section = iota
	sectionPets
)

type Options struct {
	// Admin habilita alta, edición y borrado. No es control de acceso.
	Admin bool

	Context context.Context
}

type Model struct {
	ctx     context.Context
	backend Backend
	admin   bool

	section   section
	search    textinput.Model
	searching bool
	page      int
	cursor    int

	modal   modal
	status  string
	err     string
	loading bool
	width   int
}

func New(backend Backend, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "breed, type or location"

	return Model{
		ctx:     ctx,
		backend: backend,
		admin:   opts.Admin,
		section: sectionHome,
		search:  search,
		page:    1,
		modal:   noModal{},
		loading: true,
	}
}

// Messages
type refreshedMsg struct {
	err error
}

type likedMsg struct {
	id    int64
	liked bool
	err   error
}

type action int

const (
	actionCreate action = iota
	actionUpdate
	actionDelete
	actionAdopt
	actionReview
)

type savedMsg struct {
	action action
	name   string
	err    error
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = "Could not load pets: " + client.ErrorMessage(msg.err)
		} else {
			m.err = ""
		}
		m.clampCursor()
		return m, nil

	case likedMsg:
		if msg.err != nil {
			m.err = "Could not update like: " + client.ErrorMessage(msg.err)
			return m, nil
		}
		m.err = ""
		if msg.liked {
			m.status = "Added to favorites"
		} else {
			m.status = "Removed from favorites"
		}
		return m, nil

	case savedMsg:
		return m.handleSaved(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if _, open := m.modal.(noModal); !open {
			return m.updateModal(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) handleSaved(msg savedMsg) Model {
	m.loading = false
	if msg.err != nil {
		text := client.ErrorMessage(msg.err)
		switch md := m.modal.(type) {
		case adoptModal:
			md.form.err = text
			m.modal = md
		case reviewModal:
			md.form.err = text
			m.modal = md
		case petFormModal:
			md.form.err = text
			m.modal = md
		default:
			m.modal = noModal{}
			m.err = text
		}
		return m
	}

	m.err = ""
	switch msg.action {
	case actionAdopt:
		m.modal = thankYouModal{petName: msg.name}
		m.status = ""
	case actionCreate:
		m.modal, m.status = noModal{}, fmt.Sprintf("%s was added", msg.name)
	case actionUpdate:
		m.modal, m.status = noModal{}, fmt.Sprintf("%s was updated", msg.name)
	case actionDelete:
		m.modal, m.status = noModal{}, fmt.Sprintf("%s was deleted", msg.name)
	case actionReview:
		m.modal, m.status = noModal{}, "Thanks for your review!"
	}
	m.clampCursor()
	return m
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		if m.section == sectionHome {
			m.section = sectionPets
		} else {
			m.section = sectionHome
		}
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visiblePets())-1 {
			m.cursor++
		}
	case "left", "h":
		if m.section == sectionPets {
			m.setPage(m.page - 1)
		}
	case "right", "l":
		if m.section == sectionPets {
			m.setPage(m.page + 1)
		}
	case "/":
		m.section = sectionPets
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "R":
		m.loading = true
		return m, m.refreshCmd()
	case "enter":
		if p, ok := m.selected(); ok {
			m.modal = viewModal{pet: p}
		}
	case "a":
		if p, ok := m.selected(); ok {
			m.modal = newAdoptModal(p)
		}
	case "f":
		if p, ok := m.selected(); ok {
			return m, m.likeCmd(p.ID)
		}
	case "r":
		name := ""
		if p, ok := m.selected(); ok {
			name = p.Name
		}
		m.modal = newReviewModal(name)
	case "n":
		if m.admin {
			m.modal = newPetFormModal(createPet, catalog.Pet{})
		}
	case "e":
		if p, ok := m.selected(); ok && m.admin {
			m.modal = newPetFormModal(updatePet, p)
		}
	case "d":
		if p, ok := m.selected(); ok && m.admin {
			m.modal = confirmDeleteModal{pet: p}
		}
	}
	return m, nil
}

// updateSearch: cualquier cambio en el texto vuelve a la página 1.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.page = 1
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch md := m.modal.(type) {
	case thankYouModal:
		m.modal = noModal{}
		return m, nil

	case viewModal:
		switch key {
		case "esc", "q":
			m.modal = noModal{}
		case "a":
			m.modal = newAdoptModal(md.pet)
		case "e":
			if m.admin {
				m.modal = newPetFormModal(updatePet, md.pet)
			}
		case "d":
			if m.admin {
				m.modal = confirmDeleteModal{pet: md.pet}
			}
		}
		return m, nil

	case confirmDeleteModal:
		switch key {
		case "y", "enter":
			m.loading = true
			return m, m.deleteCmd(md.pet)
		case "n", "esc":
			m.modal = noModal{}
		}
		return m, nil
	}

	if key == "esc" {
		m.modal = noModal{}
		return m, nil
	}

	f := m.modalForm()
	switch key {
	case "tab", "down":
		cmd := f.move(1)
		m.setModalForm(f)
		return m, cmd
	case "shift+tab", "up":
		cmd := f.move(-1)
		m.setModalForm(f)
		return m, cmd
	case "ctrl+s":
		return m.submit()
	case "enter":
		if f.lastFocused() {
			return m.submit()
		}
		cmd := f.move(1)
		m.setModalForm(f)
		return m, cmd
	}

	f, cmd := f.update(msg)
	m.setModalForm(f)
	return m, cmd
}

func (m Model) modalForm() form {
	switch md := m.modal.(type) {
	case adoptModal:
		return md.form
	case reviewModal:
		return md.form
	case petFormModal:
		return md.form
	}
	return form{}
}

func (m *Model) setModalForm(f form) {
	switch md := m.modal.(type) {
	case adoptModal:
		md.form = f
		m.modal = md
	case reviewModal:
		md.form = f
		m.modal = md
	case petFormModal:
		md.form = f
		m.modal = md
	}
}

// submit valida localmente; si pasa, dispara el request. Si no, deja el error en el form.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch md := m.modal.(type) {
	case adoptModal:
		in, err := md.input()
		if err != nil {
			md.form.err = err.Error()
			m.modal = md
			return m, nil
		}
		m.loading = true
		return m, m.adoptCmd(in, md.pet.Name)

	case reviewModal:
		in, err := md.input()
		if err != nil {
			md.form.err = err.Error()
			m.modal = md
			return m, nil
		}
		m.loading = true
		return m, m.reviewCmd(in, md.form.value("file"))

	case petFormModal:
		if md.mode == createPet {
			in, err := md.createInput()
			if err != nil {
				md.form.err = err.Error()
				m.modal = md
				return m, nil
			}
			m.loading = true
			return m, m.createCmd(in, md.form.value("file"))
		}
		patch, err := md.patch()
		if err != nil {
			md.form.err = err.Error()
			m.modal = md
			return m, nil
		}
		m.loading = true
		return m, m.updateCmd(patch, md.form.value("name"), md.form.value("file"))
	}
	return m, nil
}

// visiblePets es la lista sobre la que se mueve el cursor.
func (m Model) visiblePets() []catalog.Pet {
	if m.section == sectionHome {
		return m.backend.Home().Pets
	}
	return m.currentPage().Items
}

func (m Model) currentPage() catalog.Page[catalog.Pet] {
	return m.backend.Search(m.search.Value(), m.page)
}

func (m Model) selected() (catalog.Pet, bool) {
	pets := m.visiblePets()
	if m.cursor < 0 || m.cursor >= len(pets) {
		return catalog.Pet{}, false
	}
	return pets[m.cursor], true
}

func (m *Model) setPage(p int) {
	pg := m.backend.Search(m.search.Value(), p)
	if pg.Page != m.page {
		m.cursor = 0
	}
	m.page = max(pg.Page, 1)
}

func (m *Model) clampCursor() {
	if m.section == sectionPets {
		m.page = max(m.currentPage().Page, 1)
	}
	n := len(m.visiblePets())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
