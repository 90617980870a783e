package gitmoji

var gitmojis = []Gitmoji{
	{Code: "art", Emoji: "\U0001f3a8", Description: "Improving structure / format of the code."},
	{Code: "zap", Emoji: "\u26a1\ufe0f", Description: "Improving performance."},
	{Code: "fire", Emoji: "\U0001f525", Description: "Removing code or files."},
	{Code: "bug", Emoji: "\U0001f41b", Description: "Fixing a bug."},
	{Code: "ambulance", Emoji: "\U0001f691", Description: "Critical hotfix."},
	{Code: "sparkles", Emoji: "\u2728", Description: "Introducing new features."},
	{Code: "pencil", Emoji: "\U0001f4dd", Description: "Writing docs."},
	{Code: "rocket", Emoji: "\U0001f680", Description: "Deploying stuff."},
	{Code: "lipstick", Emoji: "\U0001f484", Description: "Updating the UI and style files."},
	{Code: "tada", Emoji: "\U0001f389", Description: "Initial commit."},
	{Code: "white_check_mark", Emoji: "\u2705", Description: "Updating tests."},
	{Code: "lock", Emoji: "\U0001f512\ufe0f", Description: "Fixing security issues."},
	{Code: "apple", Emoji: "\U0001f34e", Description: "Fixing something on macOS."},
	{Code: "penguin", Emoji: "\U0001f427", Description: "Fixing something on Linux."},
	{Code: "checkered_flag", Emoji: "\U0001f3c1", Description: "Fixing something on Windows."},
	{Code: "robot", Emoji: "\U0001f916", Description: "Fixing something on Android."},
	{Code: "green_apple", Emoji: "\U0001f34f", Description: "Fixing something on iOS."},
	{Code: "bookmark", Emoji: "\U0001f516", Description: "Releasing / Version tags."},
	{Code: "rotating_light", Emoji: "\U0001f6a8", Description: "Removing linter warnings."},
	{Code: "construction", Emoji: "\U0001f6a7", Description: "Work in progress."},
	{Code: "green_heart", Emoji: "\U0001f49a", Description: "Fixing CI Build."},
	{Code: "arrow_down", Emoji: "\u2b07\ufe0f", Description: "Downgrading dependencies."},
	{Code: "arrow_up", Emoji: "\u2b06\ufe0f", Description: "Upgrading dependencies."},
	{Code: "pushpin", Emoji: "\U0001f4cc", Description: "Pinning dependencies to specific versions."},
	{Code: "construction_worker", Emoji: "\U0001f477", Description: "Adding CI build system."},
	{Code: "chart_with_upwards_trend", Emoji: "\U0001f4c8", Description: "Adding analytics or tracking code."},
	{Code: "recycle", Emoji: "\u267b\ufe0f", Description: "Refactoring code."},
	{Code: "whale", Emoji: "\U0001f433", Description: "Work about Docker."},
	{Code: "heavy_plus_sign", Emoji: "\u2795", Description: "Adding a dependency."},
	{Code: "heavy_minus_sign", Emoji: "\u2796", Description: "Removing a dependency."},
	{Code: "wrench", Emoji: "\U0001f527", Description: "Changing configuration files."},
	{Code: "globe_with_meridians", Emoji: "\U0001f310", Description: "Internationalization and localization."},
	{Code: "pencil2", Emoji: "\u270f\ufe0f", Description: "Fixing typos."},
	{Code: "poop", Emoji: "\U0001f4a9", Description: "Writing bad code that needs to be improved."},
	{Code: "rewind", Emoji: "\u23ea", Description: "Reverting changes."},
	{Code: "twisted_rightwards_arrows", Emoji: "\U0001f500", Description: "Merging branches."},
	{Code: "package", Emoji: "\U0001f4e6\ufe0f", Description: "Updating compiled files or packages."},
	{Code: "alien", Emoji: "\U0001f47d", Description: "Updating code due to external API changes."},
	{Code: "truck", Emoji: "\U0001f69a", Description: "Moving or renaming files."},
	{Code: "page_facing_up", Emoji: "\U0001f4c4", Description: "Adding or updating license."},
	{Code: "boom", Emoji: "\U0001f4a5", Description: "Introducing breaking changes."},
	{Code: "bento", Emoji: "\U0001f371", Description: "Adding or updating assets."},
	{Code: "ok_hand", Emoji: "\U0001f44c", Description: "Updating code due to code review changes."},
	{Code: "wheelchair", Emoji: "\u267f\ufe0f", Description: "Improving accessibility."},
	{Code: "bulb", Emoji: "\U0001f4a1", Description: "Documenting source code."},
	{Code: "beers", Emoji: "\U0001f37b", Description: "Writing code drunkenly."},
	{Code: "speech_balloon", Emoji: "\U0001f4ac", Description: "Updating text and literals."},
	{Code: "card_file_box", Emoji: "\U0001f5c3", Description: "Performing database related changes."},
	{Code: "loud_sound", Emoji: "\U0001f50a", Description: "Adding logs."},
	{Code: "mute", Emoji: "\U0001f507", Description: "Removing logs."},
	{Code: "busts_in_silhouette", Emoji: "\U0001f465", Description: "Adding contributor(s)."},
	{Code: "children_crossing", Emoji: "\U0001f6b8", Description: "Improving user experience / usability."},
	{Code: "building_construction", Emoji: "\U0001f3d7", Description: "Making architectural changes."},
	{Code: "iphone", Emoji: "\U0001f4f1", Description: "Working on responsive design."},
	{Code: "clown_face", Emoji: "\U0001f921", Description: "Mocking things."},
	{Code: "egg", Emoji: "\U0001f95a", Description: "Adding an easter egg."},
	{Code: "see_no_evil", Emoji: "\U0001f648", Description: "Adding or updating a .gitignore file."},
	{Code: "camera_flash", Emoji: "\U0001f4f8", Description: "Adding or updating snapshots."},
	{Code: "alembic", Emoji: "\u2697", Description: "Experimenting new things."},
	{Code: "mag", Emoji: "\U0001f50d", Description: "Improving SEO."},
	{Code: "wheel_of_dharma", Emoji: "\u2638\ufe0f", Description: "Work about Kubernetes."},
	{Code: "label", Emoji: "\U0001f3f7\ufe0f", Description: "Adding or updating types (Flow, TypeScript)."},
	{Code: "seedling", Emoji: "\U0001f331", Description: "Adding or updating seed files."},
	{Code: "triangular_flag_on_post", Emoji: "\U0001f6a9", Description: "Adding, updating, or removing feature flags."},
	{Code: "goal_net", Emoji: "\U0001f945", Description: "Catching errors."},
	{Code: "dizzy", Emoji: "\U0001f4ab", Description: "Adding or updating animations and transitions."},
	{Code: "wastebasket", Emoji: "\U0001f5d1", Description: "Deprecating code that needs to be cleaned up."},
}
