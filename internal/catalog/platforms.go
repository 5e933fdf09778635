package catalog

// builtin is the compiled-in catalog. Order is significant: it drives progress
// indexing and the order of reported profiles.
var builtin = []Platform{
	{Name: "GitHub", URLTemplate: "https://github.com/%s"},
	{Name: "GitLab", URLTemplate: "https://gitlab.com/%s"},
	{Name: "Bitbucket", URLTemplate: "https://bitbucket.org/%s/"},
	{Name: "Codeberg", URLTemplate: "https://codeberg.org/%s"},
	{Name: "SourceForge", URLTemplate: "https://sourceforge.net/u/%s/profile"},
	{Name: "Docker Hub", URLTemplate: "https://hub.docker.com/u/%s"},
	{Name: "npm", URLTemplate: "https://www.npmjs.com/~%s"},
	{Name: "PyPI", URLTemplate: "https://pypi.org/user/%s/"},
	{Name: "RubyGems", URLTemplate: "https://rubygems.org/profiles/%s"},
	{Name: "Replit", URLTemplate: "https://replit.com/@%s"},
	{Name: "Codepen", URLTemplate: "https://codepen.io/%s"},
	{Name: "Dev.to", URLTemplate: "https://dev.to/%s"},
	{Name: "Hashnode", URLTemplate: "https://hashnode.com/@%s"},
	{Name: "Medium", URLTemplate: "https://medium.com/@%s"},
	{Name: "Keybase", URLTemplate: "https://keybase.io/%s"},
	{Name: "HackerOne", URLTemplate: "https://hackerone.com/%s"},
	{Name: "Bugcrowd", URLTemplate: "https://bugcrowd.com/%s"},
	{Name: "TryHackMe", URLTemplate: "https://tryhackme.com/p/%s"},
	{Name: "LeetCode", URLTemplate: "https://leetcode.com/%s/"},
	{Name: "Kaggle", URLTemplate: "https://www.kaggle.com/%s"},
	{Name: "Twitter", URLTemplate: "https://twitter.com/%s"},
	{Name: "Instagram", URLTemplate: "https://www.instagram.com/%s/"},
	{Name: "Facebook", URLTemplate: "https://www.facebook.com/%s"},
	{Name: "TikTok", URLTemplate: "https://www.tiktok.com/@%s"},
	{Name: "Reddit", URLTemplate: "https://www.reddit.com/user/%s"},
	{Name: "Pinterest", URLTemplate: "https://www.pinterest.com/%s/"},
	{Name: "Tumblr", URLTemplate: "https://%s.tumblr.com"},
	{Name: "Mastodon", URLTemplate: "https://mastodon.social/@%s"},
	{Name: "Telegram", URLTemplate: "https://t.me/%s"},
	{Name: "LinkedIn", URLTemplate: "https://www.linkedin.com/in/%s"},
	{Name: "YouTube", URLTemplate: "https://www.youtube.com/@%s"},
	{Name: "Twitch", URLTemplate: "https://www.twitch.tv/%s"},
	{Name: "Vimeo", URLTemplate: "https://vimeo.com/%s"},
	{Name: "SoundCloud", URLTemplate: "https://soundcloud.com/%s"},
	{Name: "Spotify", URLTemplate: "https://open.spotify.com/user/%s"},
	{Name: "Last.fm", URLTemplate: "https://www.last.fm/user/%s"},
	{Name: "Bandcamp", URLTemplate: "https://bandcamp.com/%s"},
	{Name: "Flickr", URLTemplate: "https://www.flickr.com/people/%s"},
	{Name: "Behance", URLTemplate: "https://www.behance.net/%s"},
	{Name: "Dribbble", URLTemplate: "https://dribbble.com/%s"},
	{Name: "DeviantArt", URLTemplate: "https://www.deviantart.com/%s"},
	{Name: "500px", URLTemplate: "https://500px.com/p/%s"},
	{Name: "Unsplash", URLTemplate: "https://unsplash.com/@%s"},
	{Name: "Patreon", URLTemplate: "https://www.patreon.com/%s"},
	{Name: "Ko-fi", URLTemplate: "https://ko-fi.com/%s"},
	{Name: "Linktree", URLTemplate: "https://linktr.ee/%s"},
	{Name: "About.me", URLTemplate: "https://about.me/%s"},
	{Name: "Gravatar", URLTemplate: "https://en.gravatar.com/%s"},
	{Name: "Steam", URLTemplate: "https://steamcommunity.com/id/%s"},
	{Name: "Chess.com", URLTemplate: "https://www.chess.com/member/%s"},
	{Name: "Lichess", URLTemplate: "https://lichess.org/@/%s"},
	{Name: "Roblox", URLTemplate: "https://www.roblox.com/user.aspx?username=%s"},
	{Name: "Goodreads", URLTemplate: "https://www.goodreads.com/%s"},
	{Name: "Wattpad", URLTemplate: "https://www.wattpad.com/user/%s"},
	{Name: "Quora", URLTemplate: "https://www.quora.com/profile/%s"},
	{Name: "Product Hunt", URLTemplate: "https://www.producthunt.com/@%s"},
	{Name: "Hacker News", URLTemplate: "https://news.ycombinator.com/user?id=%s"},
	{Name: "Slideshare", URLTemplate: "https://www.slideshare.net/%s"},
	{Name: "Etsy", URLTemplate: "https://www.etsy.com/shop/%s"},
	{Name: "Fiverr", URLTemplate: "https://www.fiverr.com/%s"},
}
