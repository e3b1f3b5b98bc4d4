package response

type AssistantChatResponse struct {
	Reply string `json:"reply"`
}
