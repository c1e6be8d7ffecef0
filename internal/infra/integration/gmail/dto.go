package gmail

// Message é o recorte mínimo que os loops consomem: remetente e snippet.
type Message struct {
	ID      string
	From    string
	Snippet string
}

type sendMessageRequest struct {
	Raw string `json:"raw"`
}

type sendMessageResponse struct {
	ID string `json:"id"`
}

type listMessagesResponse struct {
	Messages []struct {
		ID       string `json:"id"`
		ThreadID string `json:"threadId"`
	} `json:"messages"`
}

type getMessageResponse struct {
	ID      string `json:"id"`
	Snippet string `json:"snippet"`
	Payload struct {
		Headers []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"headers"`
	} `json:"payload"`
}

type modifyMessageRequest struct {
	RemoveLabelIDs []string `json:"removeLabelIds"`
}
