package domain

type (
	StoryId  = string
	Username = string
	Password = string
	Token    = string
)
