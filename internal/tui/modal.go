package tui

import (
	"errors"
	"strconv"

	"pet-adoption/internal/catalog"
	"pet-adoption/internal/client"
)

// modal es el único estado de "qué ventana está abierta". Sellado: solo los tipos de abajo.
type modal interface {
	isModal()
}

type noModal struct{}

type viewModal struct {
	pet catalog.Pet
}

type adoptModal struct {
	pet  catalog.Pet
	form form
}

type reviewModal struct {
	form form
}

type petFormMode int

const (
	createPet petFormMode = iota
	updatePet
)

type petFormModal struct {
	mode petFormMode
	pet  catalog.Pet // original en updatePet
	form form
}

type confirmDeleteModal struct {
	pet catalog.Pet
}

type thankYouModal struct {
	petName string
}

func (noModal) isModal()            {}
func (viewModal) isModal()          {}
func (adoptModal) isModal()         {}
func (reviewModal) isModal()        {}
func (petFormModal) isModal()       {}
func (confirmDeleteModal) isModal() {}
func (thankYouModal) isModal()      {}

func newAdoptModal(p catalog.Pet) adoptModal {
	return adoptModal{
		pet: p,
		form: newForm(
			fieldSpec{key: "name", label: "Your name"},
			fieldSpec{key: "address", label: "Address"},
			fieldSpec{key: "email", label: "Email"},
			fieldSpec{key: "phoneNo", label: "Phone"},
			fieldSpec{key: "reason", label: "Why adopt?"},
		),
	}
}

func (a adoptModal) input() (client.AdoptionInput, error) {
	in := client.AdoptionInput{
		Name:    a.form.value("name"),
		PetID:   a.pet.ID,
		Address: a.form.value("address"),
		Email:   a.form.value("email"),
		PhoneNo: a.form.value("phoneNo"),
		Reason:  a.form.value("reason"),
	}
	if in.Name == "" {
		return in, errors.New("name is required")
	}
	return in, nil
}

func newReviewModal(petName string) reviewModal {
	return reviewModal{
		form: newForm(
			fieldSpec{key: "name", label: "Your name"},
			fieldSpec{key: "petName", label: "Pet", value: petName},
			fieldSpec{key: "rating", label: "Rating (1-5)", value: "5", limit: 1},
			fieldSpec{key: "review", label: "Review"},
			fieldSpec{key: "img", label: "Image URL"},
			fieldSpec{key: "file", label: "Upload file", placeholder: "path/to/photo.png"},
		),
	}
}

func (r reviewModal) input() (client.ReviewInput, error) {
	in := client.ReviewInput{
		Name:    r.form.value("name"),
		PetName: r.form.value("petName"),
		Img:     r.form.value("img"),
		Review:  r.form.value("review"),
	}
	if in.Name == "" {
		return in, errors.New("name is required")
	}
	rating, err := strconv.Atoi(r.form.value("rating"))
	if err != nil || rating < 1 || rating > 5 {
		return in, errors.New("rating must be between 1 and 5")
	}
	in.Rating = rating
	return in, nil
}

func newPetFormModal(mode petFormMode, p catalog.Pet) petFormModal {
	age := ""
	if mode == updatePet {
		age = strconv.Itoa(p.Age)
	}
	return petFormModal{
		mode: mode,
		pet:  p,
		form: newForm(
			fieldSpec{key: "name", label: "Name", value: p.Name},
			fieldSpec{key: "type", label: "Type", value: p.Type, placeholder: "cat, dog..."},
			fieldSpec{key: "breed", label: "Breed", value: p.Breed},
			fieldSpec{key: "sex", label: "Sex", value: p.Sex},
			fieldSpec{key: "age", label: "Age", value: age},
			fieldSpec{key: "location", label: "Location", value: p.Location},
			fieldSpec{key: "description", label: "Description", value: p.Description},
			fieldSpec{key: "traits", label: "Traits", value: p.Traits, placeholder: "Calm,Loyal"},
			fieldSpec{key: "image", label: "Image URL", value: p.Image},
			fieldSpec{key: "primaryCol", label: "Primary color", value: p.PrimaryCol, placeholder: "#CE566D"},
			fieldSpec{key: "accentCol", label: "Accent color", value: p.AccentCol, placeholder: "#FFEEF1"},
			fieldSpec{key: "file", label: "Upload file", placeholder: "path/to/photo.png"},
		),
	}
}

// validate aplica los mismos requeridos que la API más los límites del formulario.
func (pf petFormModal) validate() (int, []string, error) {
	f := pf.form
	switch {
	case f.value("name") == "":
		return 0, nil, errors.New("name is required")
	case f.value("breed") == "":
		return 0, nil, errors.New("breed is required")
	case f.value("sex") == "":
		return 0, nil, errors.New("sex is required")
	}
	age, err := strconv.Atoi(f.value("age"))
	if err != nil || age < 0 {
		return 0, nil, errors.New("age must be a non-negative integer")
	}
	traits := catalog.SplitTraits(f.value("traits"))
	if err := catalog.CheckFormLimits(f.value("description"), traits); err != nil {
		return 0, nil, err
	}
	return age, traits, nil
}

func (pf petFormModal) createInput() (client.PetInput, error) {
	age, traits, err := pf.validate()
	if err != nil {
		return client.PetInput{}, err
	}
	f := pf.form
	return client.PetInput{
		Name:        f.value("name"),
		Type:        f.value("type"),
		Breed:       f.value("breed"),
		Sex:         f.value("sex"),
		Age:         age,
		Location:    f.value("location"),
		Description: f.value("description"),
		Image:       f.value("image"),
		Traits:      traits,
		PrimaryCol:  f.value("primaryCol"),
		AccentCol:   f.value("accentCol"),
	}, nil
}

// patch solo lleva los campos que cambiaron respecto de la mascota original.
func (pf petFormModal) patch() (client.PetPatch, error) {
	age, traits, err := pf.validate()
	if err != nil {
		return client.PetPatch{}, err
	}
	f, orig := pf.form, pf.pet
	p := client.PetPatch{ID: orig.ID}

	changed := func(key, old string) *string {
		v := f.value(key)
		if v == old {
			return nil
		}
		return &v
	}
	p.Name = changed("name", orig.Name)
	p.Type = changed("type", orig.Type)
	p.Breed = changed("breed", orig.Breed)
	p.Sex = changed("sex", orig.Sex)
	p.Location = changed("location", orig.Location)
	p.Description = changed("description", orig.Description)
	p.Image = changed("image", orig.Image)
	p.PrimaryCol = changed("primaryCol", orig.PrimaryCol)
	p.AccentCol = changed("accentCol", orig.AccentCol)

	if joined := catalog.JoinTraits(traits); joined != catalog.JoinTraits(catalog.SplitTraits(orig.Traits)) {
		p.Traits = &joined
	}
	if age != orig.Age {
		p.Age = &age
	}
	return p, nil
}
