package seed

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"freelancedesk/internal/domain/models"
)

//go:embed fixtures/*.yaml
var fixtureFiles embed.FS

// DemoFixture is the embedded fixture used when no file is given
const DemoFixture = "fixtures/demo.yaml"

// Fixture is a seed data set. Tasks reference their freelancer by phone
// number, which is unique per freelancer.
type Fixture struct {
	Freelancers []FreelancerFixture `yaml:"freelancers"`
	Customers   []CustomerFixture   `yaml:"customers"`
}

type FreelancerFixture struct {
	FirstName        string      `yaml:"firstName"`
	LastName         string      `yaml:"lastName"`
	PhoneNumber      string      `yaml:"phoneNumber"`
	Email            string      `yaml:"email"`
	ImageURL         string      `yaml:"imageUrl"`
	AvailableFrom    models.Date `yaml:"availableFrom"`
	HourlyRate       *float64    `yaml:"hourlyRate"`
	Rating           *float64    `yaml:"rating"`
	PlaceOfResidence string      `yaml:"placeOfResidence"`
	Description      string      `yaml:"description"`
}

type CustomerFixture struct {
	CustomerName     string           `yaml:"customerName"`
	CustomerLocation string           `yaml:"customerLocation"`
	CustomerContact  string           `yaml:"customerContact"`
	CustomerEmail    string           `yaml:"customerEmail"`
	CustomerPhone    string           `yaml:"customerPhone"`
	CustomerImageURL string           `yaml:"customerImageUrl"`
	Projects         []ProjectFixture `yaml:"projects"`
}

type ProjectFixture struct {
	ProjectName        string        `yaml:"projectName"`
	ProjectStart       models.Date   `yaml:"projectStart"`
	ProjectFinish      models.Date   `yaml:"projectFinish"`
	ProjectPurchase    *float64      `yaml:"projectPurchase"`
	ProjectSale        *float64      `yaml:"projectSale"`
	ProjectDescription string        `yaml:"projectDescription"`
	Tasks              []TaskFixture `yaml:"tasks"`
}

type TaskFixture struct {
	TaskName        string      `yaml:"taskName"`
	TaskStart       models.Date `yaml:"taskStart"`
	TaskFinish      models.Date `yaml:"taskFinish"`
	TaskPurchase    *float64    `yaml:"taskPurchase"`
	TaskSale        *float64    `yaml:"taskSale"`
	TaskDescription string      `yaml:"taskDescription"`
	// Freelancer is the phone number of the linked freelancer, if any
	Freelancer string `yaml:"freelancer"`
}

// Load reads a fixture from path, or the embedded demo fixture when path is empty
func Load(path string) (*Fixture, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = DemoFixture
		data, err = fixtureFiles.ReadFile(DemoFixture)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML fixture and checks its task references
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixture: %w", err)
	}

	phones := make(map[string]bool, len(f.Freelancers))
	for _, fl := range f.Freelancers {
		if phones[fl.PhoneNumber] {
			return nil, fmt.Errorf("duplicate freelancer phone number %q", fl.PhoneNumber)
		}
		phones[fl.PhoneNumber] = true
	}
	for _, c := range f.Customers {
		for _, p := range c.Projects {
			for _, t := range p.Tasks {
				if t.Freelancer != "" && !phones[t.Freelancer] {
					return nil, fmt.Errorf("task %q references unknown freelancer %q", t.TaskName, t.Freelancer)
				}
			}
		}
	}

	return &f, nil
}

func (f *FreelancerFixture) attributes() *models.FreelancerAttributes {
	return &models.FreelancerAttributes{
		FirstName:        f.FirstName,
		LastName:         f.LastName,
		PhoneNumber:      f.PhoneNumber,
		Email:            f.Email,
		ImageURL:         f.ImageURL,
		AvailableFrom:    f.AvailableFrom,
		HourlyRate:       f.HourlyRate,
		Rating:           f.Rating,
		PlaceOfResidence: f.PlaceOfResidence,
		Description:      f.Description,
	}
}

func (c *CustomerFixture) attributes() *models.CustomerAttributes {
	return &models.CustomerAttributes{
		CustomerName:     c.CustomerName,
		CustomerLocation: c.CustomerLocation,
		CustomerContact:  c.CustomerContact,
		CustomerEmail:    c.CustomerEmail,
		CustomerPhone:    c.CustomerPhone,
		CustomerImageURL: c.CustomerImageURL,
	}
}

func (p *ProjectFixture) attributes(customerID string) *models.ProjectAttributes {
	return &models.ProjectAttributes{
		ProjectName:        p.ProjectName,
		ProjectStart:       p.ProjectStart,
		ProjectFinish:      p.ProjectFinish,
		ProjectPurchase:    p.ProjectPurchase,
		ProjectSale:        p.ProjectSale,
		ProjectDescription: p.ProjectDescription,
		CustomerID:         customerID,
	}
}

func (t *TaskFixture) attributes(projectID string) *models.TaskAttributes {
	return &models.TaskAttributes{
		TaskName:        t.TaskName,
		TaskStart:       t.TaskStart,
		TaskFinish:      t.TaskFinish,
		TaskPurchase:    t.TaskPurchase,
		TaskSale:        t.TaskSale,
		TaskDescription: t.TaskDescription,
		ProjectID:       projectID,
	}
}
