package graphql

import (
	"fmt"

	"freelancedesk/internal/config"
)

// Nested relation lists default to a small page on the API side; every
// relation is requested with the full page size.
var relationPage = fmt.Sprintf("(pagination: {pageSize: %d})", config.DefaultPageSize)

var freelancerFields = `
	firstName
	lastName
	phoneNumber
	email
	imageUrl
	availableFrom
	hourlyRate
	rating
	placeOfResidence
	description
	createdAt
	updatedAt
	tasks` + relationPage + ` { data { id } }`

var customerFields = `
	customerName
	customerLocation
	customerContact
	customerEmail
	customerPhone
	customerImageUrl
	createdAt
	updatedAt
	projects` + relationPage + ` { data { id } }`

var projectFields = `
	projectName
	projectStart
	projectFinish
	projectPurchase
	projectSale
	projectDescription
	createdAt
	updatedAt
	customer { data { id attributes { customerName } } }
	tasks` + relationPage + ` { data { id } }`

var taskFields = `
	taskName
	taskStart
	taskFinish
	taskPurchase
	taskSale
	taskDescription
	createdAt
	updatedAt
	project { data { id attributes { projectName } } }
	freelancer { data { id attributes { firstName lastName } } }`

var (
	freelancerListQuery = `query FreelancerList($pagination: PaginationArg, $filters: FreelancerFiltersInput, $sort: [String]) {
	freelancers(pagination: $pagination, filters: $filters, sort: $sort) { data { id attributes {` + freelancerFields + ` } } }
}`
	freelancerQuery = `query Freelancer($id: ID) {
	freelancer(id: $id) { data { id attributes {` + freelancerFields + ` } } }
}`
	customerListQuery = `query CustomerList($pagination: PaginationArg, $filters: CustomerFiltersInput, $sort: [String]) {
	customers(pagination: $pagination, filters: $filters, sort: $sort) { data { id attributes {` + customerFields + ` } } }
}`
	customerQuery = `query Customer($id: ID) {
	customer(id: $id) { data { id attributes {` + customerFields + ` } } }
}`
	projectListQuery = `query ProjectList($pagination: PaginationArg, $filters: ProjectFiltersInput, $sort: [String]) {
	projects(pagination: $pagination, filters: $filters, sort: $sort) { data { id attributes {` + projectFields + ` } } }
}`
	projectQuery = `query Project($id: ID) {
	project(id: $id) { data { id attributes {` + projectFields + ` } } }
}`
	taskListQuery = `query TaskList($pagination: PaginationArg, $filters: TaskFiltersInput, $sort: [String]) {
	tasks(pagination: $pagination, filters: $filters, sort: $sort) { data { id attributes {` + taskFields + ` } } }
}`
	taskQuery = `query Task($id: ID) {
	task(id: $id) { data { id attributes {` + taskFields + ` } } }
}`
)

const (
	createFreelancerMutation = `mutation CreateFreelancer($data: FreelancerInput!) {
	createFreelancer(data: $data) { data { id } }
}`
	updateFreelancerMutation = `mutation UpdateFreelancer($id: ID!, $data: FreelancerInput!) {
	updateFreelancer(id: $id, data: $data) { data { id } }
}`
	deleteFreelancerMutation = `mutation DeleteFreelancer($id: ID!) {
	deleteFreelancer(id: $id) { data { id } }
}`
	createCustomerMutation = `mutation CreateCustomer($data: CustomerInput!) {
	createCustomer(data: $data) { data { id } }
}`
	updateCustomerMutation = `mutation UpdateCustomer($id: ID!, $data: CustomerInput!) {
	updateCustomer(id: $id, data: $data) { data { id } }
}`
	deleteCustomerMutation = `mutation DeleteCustomer($id: ID!) {
	deleteCustomer(id: $id) { data { id } }
}`
	createProjectMutation = `mutation CreateProject($data: ProjectInput!) {
	createProject(data: $data) { data { id } }
}`
	updateProjectMutation = `mutation UpdateProject($id: ID!, $data: ProjectInput!) {
	updateProject(id: $id, data: $data) { data { id } }
}`
	deleteProjectMutation = `mutation DeleteProject($id: ID!) {
	deleteProject(id: $id) { data { id } }
}`
	createTaskMutation = `mutation CreateTask($data: TaskInput!) {
	createTask(data: $data) { data { id } }
}`
	updateTaskMutation = `mutation UpdateTask($id: ID!, $data: TaskInput!) {
	updateTask(id: $id, data: $data) { data { id } }
}`
	deleteTaskMutation = `mutation DeleteTask($id: ID!) {
	deleteTask(id: $id) { data { id } }
}`
	loginMutation = `mutation Login($input: UsersPermissionsLoginInput!) {
	login(input: $input) { jwt user { id username email } }
}`
)
