package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jeffersonwarrior/playht"
)

var client *playht.Client

func main() {
	rootCmd := &cobra.Command{
		Use:   "playht",
		Short: "Play.ht TTS API command line client",
		Long: `playht is a command line client for the Play.ht text-to-speech API.

Credentials are read from the PLAYHT_SECRET_KEY and PLAYHT_USER_ID
environment variables, or from a .env file in the working directory.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env file is optional; the environment may already be set.
			_ = godotenv.Load()
			client = playht.NewClient()
		},
	}

	rootCmd.AddCommand(voicesCmd())
	rootCmd.AddCommand(cloneCmd())
	rootCmd.AddCommand(deleteVoiceCmd())
	rootCmd.AddCommand(jobCmd())
	rootCmd.AddCommand(streamCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func voicesCmd() *cobra.Command {
	var cloned bool

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List available voices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cloned {
				voices, err := client.ListClonedVoices(ctx)
				if err != nil {
					return err
				}
				for _, v := range voices {
					fmt.Printf("%s\t%s\t%s\n", v.ID, v.Name, v.Type)
				}
				return nil
			}

			voices, err := client.ListVoices(ctx)
			if err != nil {
				return err
			}
			for _, v := range voices {
				fmt.Printf("%s\t%s\t%s\t%s\n", v.ID, v.Name, v.Language, v.Gender)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cloned, "cloned", false, "List cloned voices instead of stock voices")
	return cmd
}

func cloneCmd() *cobra.Command {
	var (
		name     string
		file     string
		mimeType string
		fileURL  string
	)

	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Create an instant voice clone from a sample file or URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				voice *playht.ClonedVoice
				err   error
			)
			switch {
			case file != "":
				voice, err = client.CloneVoiceFromFile(ctx, playht.CloneVoiceFileRequest{
					SampleFile: file,
					VoiceName:  name,
					MimeType:   mimeType,
				})
			case fileURL != "":
				voice, err = client.CloneVoiceFromURL(ctx, playht.CloneVoiceURLRequest{
					SampleFileURL: fileURL,
					VoiceName:     name,
				})
			default:
				return fmt.Errorf("either --file or --url is required")
			}
			if err != nil {
				return err
			}

			fmt.Printf("cloned voice %s (%s)\n", voice.Name, voice.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the cloned voice")
	cmd.Flags().StringVar(&file, "file", "", "Path to a local voice sample file")
	cmd.Flags().StringVar(&mimeType, "mime", "audio/mpeg", "Media type of the sample file")
	cmd.Flags().StringVar(&fileURL, "url", "", "URL of a voice sample file")
	cmd.MarkFlagRequired("name")
	return cmd
}

func deleteVoiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-voice <voice-id>",
		Short: "Delete a cloned voice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.DeleteClonedVoice(cmd.Context(), playht.DeleteClonedVoiceRequest{
				VoiceID: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s (%s)\n", resp.Message, resp.Deleted.Name, resp.Deleted.ID)
			return nil
		},
	}
}

func jobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage asynchronous TTS jobs",
	}
	cmd.AddCommand(jobCreateCmd())
	cmd.AddCommand(jobGetCmd())
	cmd.AddCommand(jobProgressCmd())
	cmd.AddCommand(jobAudioCmd())
	return cmd
}

func jobCreateCmd() *cobra.Command {
	var (
		text    string
		voice   string
		quality string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an async TTS job",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := client.CreateTTSJob(cmd.Context(), playht.CreateTTSJobRequest{
				Text:         text,
				Voice:        voice,
				Quality:      playht.Quality(quality),
				OutputFormat: playht.OutputFormat(format),
			})
			if err != nil {
				return err
			}
			fmt.Printf("job %s status=%s\n", job.ID, job.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to synthesize")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice id")
	cmd.Flags().StringVar(&quality, "quality", "", "Audio quality (draft, low, medium, high, premium)")
	cmd.Flags().StringVar(&format, "format", "", "Output format (mp3, wav, ogg, flac, mulaw)")
	cmd.MarkFlagRequired("text")
	cmd.MarkFlagRequired("voice")
	return cmd
}

func jobGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <job-id>",
		Short: "Fetch an async TTS job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := client.GetTTSJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("job %s status=%s\n", job.ID, job.Status)
			if job.Output != nil {
				fmt.Printf("output: %s (%.1fs, %d bytes)\n", job.Output.URL, job.Output.Duration, job.Output.Size)
			}
			return nil
		},
	}
}

func jobProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <job-id>",
		Short: "Stream the progress events of an async TTS job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Relay SSE into a pipe and print each event payload as it
			// arrives.
			pr, pw := io.Pipe()
			go func() {
				err := client.StreamTTSJobProgress(cmd.Context(), pw, args[0])
				pw.CloseWithError(err)
			}()

			s := playht.NewSSEScanner(pr)
			for s.Scan() {
				fmt.Println(s.Data())
			}
			return s.Err()
		},
	}
}

func jobAudioCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "audio <job-id>",
		Short: "Stream the audio of an async TTS job to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("tts-%s.mp3", uuid.NewString())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := client.StreamTTSJobAudio(cmd.Context(), f, args[0]); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default tts-<uuid>.mp3)")
	return cmd
}

func streamCmd() *cobra.Command {
	var (
		text  string
		voice string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Synthesize speech and stream the audio to a file in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("tts-%s.mp3", uuid.NewString())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			err = client.StreamAudio(cmd.Context(), f, playht.TTSStreamRequest{
				Text:  text,
				Voice: voice,
			})
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to synthesize")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice id")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default tts-<uuid>.mp3)")
	cmd.MarkFlagRequired("text")
	cmd.MarkFlagRequired("voice")
	return cmd
}
