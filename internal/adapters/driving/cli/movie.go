package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var movieLimit int

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Query the local movie catalog directly",
	Long: `Query the IMDb Top 1000 catalog without starting a chat session.

These commands use the same tools the chat agent does, including
typo-tolerant title matching.`,
}

var movieInfoCmd = &cobra.Command{
	Use:   "info [title]",
	Short: "Show full information about a movie",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(movieTools.MovieInfo(cmd.Context(), strings.Join(args, " ")))
	},
}

var movieRatingCmd = &cobra.Command{
	Use:   "rating [title]",
	Short: "Show the IMDb rating of a movie",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(movieTools.MovieRating(cmd.Context(), strings.Join(args, " ")))
	},
}

var movieActorCmd = &cobra.Command{
	Use:   "actor [name]",
	Short: "List movies featuring an actor, best-rated first",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(movieTools.MoviesWithActor(cmd.Context(), strings.Join(args, " "), movieLimit))
	},
}

var movieGenreCmd = &cobra.Command{
	Use:   "genre [genre]",
	Short: "List the top-rated movies of a genre",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(movieTools.TopByGenre(cmd.Context(), strings.Join(args, " "), movieLimit))
	},
}

var movieKeywordCmd = &cobra.Command{
	Use:   "keyword [word]",
	Short: "Find movies whose synopsis mentions a keyword",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(movieTools.SearchByKeyword(cmd.Context(), strings.Join(args, " "), movieLimit))
	},
}

func init() {
	movieCmd.PersistentFlags().IntVarP(&movieLimit, "limit", "n", 0, "maximum number of results (default 5)")
	movieCmd.AddCommand(movieInfoCmd)
	movieCmd.AddCommand(movieRatingCmd)
	movieCmd.AddCommand(movieActorCmd)
	movieCmd.AddCommand(movieGenreCmd)
	movieCmd.AddCommand(movieKeywordCmd)
	rootCmd.AddCommand(movieCmd)
}
