// Package hathora is the Go client SDK for the Hathora Voice AI API:
// speech-to-text (parakeet), text-to-speech (kokoro, resemble) and chat
// completion (qwen).
//
// Calls route through a model parameter registry: each backend model
// declares its accepted parameters, defaults and wire shape, and the SDK
// validates caller parameters against that declaration before any request
// leaves the process.
//
//	client, err := hathora.New(hathora.WithAPIKey("your-api-key"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Transcribe audio
//	tr, err := client.SpeechToText.Create(ctx, "parakeet", "audio.wav", nil)
//	fmt.Println(tr.Text)
//
//	// Generate speech
//	out, err := client.TextToSpeech.Convert(ctx, "kokoro", "Hello world",
//		map[string]any{"voice": "af_bella", "speed": 1.2})
//	err = out.Save("output.wav")
//
//	// Chat
//	resp, err := client.LLM.ChatText(ctx, "qwen", "What is AI?", nil)
//	fmt.Println(resp.Content())
package hathora
